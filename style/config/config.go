package config

import (
	"errors"
	"fmt"

	"github.com/kode4food/boxgrid/style"
)

type (
	// Config conveys the contents of a style Registry that one can build
	// using Options
	Config struct {
		Glyphs      map[style.Style]style.Glyphs
		Connections map[style.Style]map[style.Style]style.Connection
		Default     style.Style
		DefaultSet  bool
	}

	// Option applies an option to a registry configuration instance
	Option func(*Config) error
)

// Error messages
var (
	ErrStyleAlreadyDeclared = errors.New("style already declared")
	ErrConnectionAlreadySet = errors.New("connection already declared")
	ErrSelfConnection       = errors.New("style cannot connect to itself")
	ErrDefaultAlreadySet    = errors.New("default style already set")
)

// Make returns an empty Config, ready for Options to be applied
func Make() *Config {
	return &Config{
		Glyphs:      map[style.Style]style.Glyphs{},
		Connections: map[style.Style]map[style.Style]style.Connection{},
	}
}

// Declare adds a Style and its plain Glyphs
func Declare(s style.Style, g style.Glyphs) Option {
	return func(c *Config) error {
		if _, ok := c.Glyphs[s]; ok {
			return fmt.Errorf("%w: %s", ErrStyleAlreadyDeclared, s)
		}
		if err := g.Validate(); err != nil {
			return fmt.Errorf("%w in style %s", err, s)
		}
		c.Glyphs[s] = g
		return nil
	}
}

// Connect adds an entry to the owner's junction table, describing the
// glyphs it draws where it meets the counterpart. The reverse pairing is
// not implied and must be declared separately
func Connect(owner, counterpart style.Style, conn style.Connection) Option {
	return func(c *Config) error {
		if owner == counterpart {
			return fmt.Errorf("%w: %s", ErrSelfConnection, owner)
		}
		if err := conn.Validate(); err != nil {
			return fmt.Errorf("%w in %s to %s", err, owner, counterpart)
		}
		table, ok := c.Connections[owner]
		if !ok {
			table = map[style.Style]style.Connection{}
			c.Connections[owner] = table
		}
		if _, ok := table[counterpart]; ok {
			return fmt.Errorf("%w: %s to %s",
				ErrConnectionAlreadySet, owner, counterpart,
			)
		}
		table[counterpart] = conn
		return nil
	}
}

// DefaultStyle sets the Style that new grid cells are assigned
func DefaultStyle(s style.Style) Option {
	return func(c *Config) error {
		if c.DefaultSet {
			return fmt.Errorf("%w: %s", ErrDefaultAlreadySet, c.Default)
		}
		c.Default = s
		c.DefaultSet = true
		return nil
	}
}

// Combine applies a set of Options in order, stopping at the first error
func Combine(o ...Option) Option {
	return func(c *Config) error {
		for _, opt := range o {
			if err := opt(c); err != nil {
				return err
			}
		}
		return nil
	}
}
