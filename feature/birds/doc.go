// Package birds implements the bird sampling feature of the quiz backend.
//
// It serves randomized images of birds from the catalog ('stats' and 'images'
// tables) and lets the frontend flag bad images.
//
// # Components
//
//   - Store: GORM implementation of the Catalog interface (postgres, mysql, sqlite).
//   - Service: validates counts, applies the query timeout, runs a selection
//     predicate from the selection package and samples images.
//   - Handler: Exposes HTTP endpoints and normalizes region codes and bird names.
//   - Loader: Registers the feature with the application.
//
// # Guarantees
//
// Results never contain an excluded image, never more than the requested number
// of images per bird, and never the same image twice for a bird. Birds without
// eligible images simply produce no rows.
//
// # HTTP Endpoints
//
//   - GET /random/:region/:n : n random birds of a region.
//   - GET /common/:region/:n : n most abundant birds of a region.
//   - GET /genus?name= : every bird of a genus.
//   - GET /get?birds=a,b : specific birds.
//   - GET /bad_image?filepath= : exclude an image and return a replacement.
//
// All of them accept ?images=k (default 1) except bad_image, and are mounted
// under the configured API prefix.
package birds
