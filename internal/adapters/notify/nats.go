package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-adoption/internal/contracts"
	"pet-adoption/internal/domain/adoptions"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
)

// PublishFunc publica payload en subject. Permite tests sin servidor NATS.
type PublishFunc func(subject string, payload []byte) error

// Publisher implementa adoptions.Notifier publicando AdoptionConfirmedEvent.
type Publisher struct {
	subject string
	publish PublishFunc
	conn    *nats.Conn
	now     func() time.Time
}

var _ adoptions.Notifier = (*Publisher)(nil)

func NewPublisher(subject string, publish PublishFunc) (*Publisher, error) {
	if publish == nil {
		return nil, errors.New("notify: publish func required")
	}
	subject = strings.TrimSpace(subject)
	if subject == "" {
		subject = contracts.SubjectAdoptionConfirmed
	}
	return &Publisher{subject: subject, publish: publish, now: time.Now}, nil
}

// Connect abre la conexión NATS y devuelve un Publisher sobre ella.
func Connect(url, subject, name string) (*Publisher, error) {
	conn, err := nats.Connect(url,
		nats.Name(name),
		nats.Timeout(3*time.Second),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		return nil, fmt.Errorf("notify: connect %s: %w", url, err)
	}

	p, err := NewPublisher(subject, conn.Publish)
	if err != nil {
		conn.Close()
		return nil, err
	}
	p.conn = conn
	return p, nil
}

func (p *Publisher) AdoptionConfirmed(ctx context.Context, r adoptions.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	ev := contracts.AdoptionConfirmedEvent{
		EventID:     uuid.NewString(),
		AdoptionID:  r.ID,
		AnimalID:    r.AnimalID,
		AnimalName:  r.AnimalName,
		AdopterName: r.AdopterName,
		OccurredAt:  p.now().UTC(),
	}
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("notify: marshal: %w", err)
	}
	if err := p.publish(p.subject, payload); err != nil {
		return fmt.Errorf("notify: publish %s: %w", p.subject, err)
	}
	return nil
}

// Close vacía y cierra la conexión si la abrió Connect.
func (p *Publisher) Close() {
	if p == nil || p.conn == nil {
		return
	}
	_ = p.conn.Drain()
	p.conn.Close()
}
