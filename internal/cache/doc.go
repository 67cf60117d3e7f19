// Package cache provides the lookup cache used by font providers.
//
// Outline providers are shared by every Context that references a font,
// possibly from several goroutines at once, so their per-glyph lookup
// caches must be internally synchronized. Cache is a small generic
// soft-limit LRU that serves that purpose:
//
//	outlines := cache.New[font.GlyphID, *font.Outline](512)
//	o, err := outlines.GetOrLoad(gid, func() (*font.Outline, error) {
//	    return load(gid)
//	})
//
// Failed loads are not cached, so a transient error is retried on the
// next lookup.
//
// # Thread Safety
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
