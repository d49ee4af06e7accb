// Package cache implements a single-process, fixed-capacity LRU key–value cache.
//
// Goals for this package:
//   - Make the core data structures explicit (map index + sentinel-delimited
//     doubly-linked recency list)
//   - Provide O(1) Get/Put/Remove via the index plus intrusive list links
//   - Evict exactly the least recently used entry, and only on a Put that
//     overflows capacity
//   - Stay single-threaded; callers sharing a cache guard it with one lock
package cache
