// Package integrity checks the catalog against its expectations and against
// the image bucket.
//
// # Checks Provided
//
//   - Schema: the 'stats' and 'images' tables have the columns (and column
//     type families) of the GORM models.
//   - Images: the bucket exists, and every eligible image has an object under
//     the configured prefix. Missing objects can be fixed by excluding the
//     image, exactly as a user flagging a bad image would.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks, never fixes.
//   - GET /integrity/schema : Runs the schema check.
//   - GET /integrity/images : Runs the image check (supports ?fix=true).
package integrity
