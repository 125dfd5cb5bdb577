package ports

// AssetStore gives read-only access to icon files by file name.
type AssetStore interface {
	Read(name string) ([]byte, error)
	Exists(name string) bool
}
