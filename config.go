package authclient

// Defaults applied by SimpleConfig when a field is left empty.
const (
	DefaultStoragePath = "authclient.db"
)

// SimpleConfig is a plain-struct Config implementation.
type SimpleConfig struct {
	BaseURL     string
	AuthScheme  string
	StoragePath string
}

var _ Config = (*SimpleConfig)(nil)

func (c *SimpleConfig) GetBaseURL() string {
	return c.BaseURL
}

func (c *SimpleConfig) GetAuthScheme() string {
	if c.AuthScheme == "" {
		return DefaultAuthScheme
	}
	return c.AuthScheme
}

func (c *SimpleConfig) GetStoragePath() string {
	if c.StoragePath == "" {
		return DefaultStoragePath
	}
	return c.StoragePath
}
