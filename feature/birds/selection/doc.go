// Package selection holds the pure sampling logic behind every bird query.
//
// Selection predicates turn catalog rows into an ordered list of distinct
// subjects (programmatic names):
//   - RandomByRegion: uniform pick without replacement
//   - TopByRegion: highest abundance first, missing abundance last
//   - ByNames: the requested names, deduplicated
//   - ByGenus: every subject of a genus
//
// Sample then draws a bounded random set of images for each subject.
//
// Nothing here touches the database or keeps state between calls. Randomness
// comes from a Source so tests can pin the draw.
package selection
