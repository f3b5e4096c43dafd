package config

import "time"

type Config interface {
	Host() string
	HTTPPort() string

	ResourceRoot() string
	UsersFile() string

	ReadTimeout() time.Duration
	WriteTimeout() time.Duration
	MaxBodySize() int64

	BcryptCost() int
	ServerName() string

	LogLevel() string
	DevMode() bool

	PprofEnabled() bool
	PprofPort() string
}

// MustLoad reads envFile (".env" when empty) if it exists, then parses the
// process environment.
func MustLoad(envFile string) (Config, error) {
	if err := loadEnvFile(envFile); err != nil {
		return nil, err
	}

	cfg, err := parse()
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *config) Host() string                { return c.host }
func (c *config) HTTPPort() string            { return c.httpPort }
func (c *config) ResourceRoot() string        { return c.resourceRoot }
func (c *config) UsersFile() string           { return c.usersFile }
func (c *config) ReadTimeout() time.Duration  { return c.readTimeout }
func (c *config) WriteTimeout() time.Duration { return c.writeTimeout }
func (c *config) MaxBodySize() int64          { return c.maxBodySize }
func (c *config) BcryptCost() int             { return c.bcryptCost }
func (c *config) ServerName() string          { return c.serverName }
func (c *config) LogLevel() string            { return c.logLevel }
func (c *config) DevMode() bool               { return c.devMode }
func (c *config) PprofEnabled() bool          { return c.pprofEnabled }
func (c *config) PprofPort() string           { return c.pprofPort }
