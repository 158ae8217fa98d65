package cache

// ScopedKeyer wraps a Keyer with a prefix, e.g. to keep the caches of
// several deployments sharing one Redis apart.
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "protodiagram:v1:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// RenderKey generates a prefixed render key.
func (k *ScopedKeyer) RenderKey(diagramHash string, opts RenderKeyOpts) string {
	return k.prefix + k.inner.RenderKey(diagramHash, opts)
}
