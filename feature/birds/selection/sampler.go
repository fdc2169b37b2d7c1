package selection

import (
	"slices"

	"bird-herd/feature/birds/models"
)

type rankedImage struct {
	filepath string
	rank     float64
}

// Sample draws up to perSubject images for every candidate, in candidate order.
//
// Each eligible image of a subject gets an independent random rank; images are
// sorted by rank and the first perSubject are kept. Excluded images and repeated
// filepaths are ignored, and subjects without eligible images produce no rows.
// The result never exceeds len(candidates) * perSubject rows.
func Sample(src Source, candidates []string, images []models.Image, perSubject int) []models.Bird {
	birds := make([]models.Bird, 0)
	if perSubject <= 0 || len(candidates) == 0 {
		return birds
	}

	pool := make(map[string][]string, len(candidates))
	seenPath := make(map[string]struct{}, len(images))
	for _, img := range images {
		if img.Excluded {
			continue
		}
		if _, dup := seenPath[img.Filepath]; dup {
			continue
		}
		seenPath[img.Filepath] = struct{}{}
		pool[img.ProgrammaticName] = append(pool[img.ProgrammaticName], img.Filepath)
	}

	done := make(map[string]struct{}, len(candidates))
	for _, subject := range candidates {
		if _, ok := done[subject]; ok {
			continue
		}
		done[subject] = struct{}{}

		paths := pool[subject]
		if len(paths) == 0 {
			continue
		}

		ranked := make([]rankedImage, len(paths))
		for i, p := range paths {
			ranked[i] = rankedImage{filepath: p, rank: src.Float64()}
		}
		slices.SortFunc(ranked, func(a, b rankedImage) int {
			switch {
			case a.rank < b.rank:
				return -1
			case a.rank > b.rank:
				return 1
			default:
				return 0
			}
		})

		for i := 0; i < len(ranked) && i < perSubject; i++ {
			birds = append(birds, models.Bird{
				ProgrammaticName: subject,
				Filepath:         ranked[i].filepath,
			})
		}
	}
	return birds
}
