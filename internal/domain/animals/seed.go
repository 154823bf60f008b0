package animals

import (
	"context"
	"fmt"
)

// DefaultCatalog es el catálogo inicial de un almacén vacío.
func DefaultCatalog() []Animal {
	return []Animal{
		{
			Name:        "Musti",
			Type:        "dog",
			Age:         3,
			Breed:       "Mixed breed",
			Description: "Musti is an energetic, playful dog who loves being outdoors and long walks. Best suited to an active family.",
			ImageURL:    "https://images.unsplash.com/photo-1587300003388-59208cc962cb?w=400",
		},
		{
			Name:        "Mirri",
			Type:        "cat",
			Age:         2,
			Breed:       "Domestic shorthair",
			Description: "Mirri is calm and affectionate. Happy indoors and a good companion for children.",
			ImageURL:    "https://images.unsplash.com/photo-1514888286974-6c03e2ca1dba?w=400",
		},
		{
			Name:        "Rex",
			Type:        "dog",
			Age:         5,
			Breed:       "German Shepherd",
			Description: "Rex is loyal and clever, used to children and other animals. Needs an active owner.",
			ImageURL:    "https://images.unsplash.com/photo-1568572933382-74d440642117?w=400",
		},
		{
			Name:        "Kissa",
			Type:        "cat",
			Age:         1,
			Breed:       "Siamese",
			Description: "A young, curious Siamese who loves to play and is very social. A vocal companion!",
			ImageURL:    "https://images.unsplash.com/photo-1513360371669-4adf3dd7dff8?w=400",
		},
		{
			Name:        "Nalle",
			Type:        "dog",
			Age:         7,
			Breed:       "Golden Retriever",
			Description: "Nalle is a calm and friendly senior dog who enjoys slow walks and relaxing on the sofa.",
			ImageURL:    "https://images.unsplash.com/photo-1633722715463-d30f4f325e24?w=400",
		},
		{
			Name:        "Viiru",
			Type:        "cat",
			Age:         4,
			Breed:       "European Shorthair",
			Description: "Viiru is independent but gentle, and does well with someone who lives alone.",
			ImageURL:    "https://images.unsplash.com/photo-1574158622682-e40e69881006?w=400",
		},
	}
}

// SeedIfEmpty inserta items solo si el almacén no tiene animales.
// Devuelve cuántos se insertaron.
func SeedIfEmpty(ctx context.Context, repo Repository, items []Animal) (int, error) {
	n, err := repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("seed: count animals: %w", err)
	}
	if n > 0 {
		return 0, nil
	}

	for i, a := range items {
		if a.Status == "" {
			a.Status = StatusAvailable
		}
		if _, err := repo.Create(ctx, a); err != nil {
			return i, fmt.Errorf("seed: create %q: %w", a.Name, err)
		}
	}
	return len(items), nil
}
