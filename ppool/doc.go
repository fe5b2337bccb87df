// Package ppool recycles game objects to avoid allocation churn.
//
// [Pool] is keyed by prototype: each prototype value gets its own stack of
// available instances, a creation limit and a staleness window.
// [PocoPool] does the same for plain Go structs keyed by type.
//
//	bullets := ppool.New(ppool.Hooks[*Sprite]{
//		New:   func(proto *Sprite) *Sprite { c := *proto; return &c },
//		OnGet: func(s *Sprite) { s.Visible = true },
//		OnPut: func(s *Sprite) { s.Visible = false },
//	})
//	bullets.SetLimit(bulletProto, 64)
//	if b, ok := bullets.Get(bulletProto); ok {
//		...
//		bullets.Put(b)
//	}
//
// Get reuses the most recently returned instance. When a key reaches its
// limit Get reports false instead of allocating. Put destroys objects the
// pool never created. Expire culls instances that have been idle longer than
// their key's staleness; call it periodically, e.g. once per second.
//
// Settings can come from YAML through [LoadConfig]:
//
//	default:
//	  limit: unlimited
//	  staleness: never
//	keys:
//	  bullet:
//	    limit: 64
//	    staleness: 30s
//	    prewarm: 16
//
// Pools are single-threaded. Guard them externally if several goroutines
// share one.
package ppool
