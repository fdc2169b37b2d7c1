// Package models defines the bird catalog tables and the API result row.
//
// RegionStat and Image map the externally owned 'stats' and 'images' tables. The
// soft delete column is literally named "delete" in the catalog; it is exposed as
// Image.Excluded. Bird is the {programmatic_name, filepath} pair every sampling
// endpoint returns.
package models
