package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Embedding.validate(); err != nil {
		return fmt.Errorf("embedding: %w", err)
	}
	if err := c.Chain.validate(); err != nil {
		return fmt.Errorf("chain: %w", err)
	}
	if err := c.Distribution.validate(); err != nil {
		return fmt.Errorf("distribution: %w", err)
	}
	if err := c.Pattern.validate(); err != nil {
		return fmt.Errorf("pattern: %w", err)
	}

	return nil
}

func (c *EmbeddingConfig) validate() error {
	if c.Dimensions <= 0 {
		return fmt.Errorf("dimensions must be > 0 (got %d)", c.Dimensions)
	}
	if c.MaxRetries < 0 {
		return fmt.Errorf("max_retries must be >= 0 (got %d)", c.MaxRetries)
	}
	return nil
}

func (c *ChainConfig) validate() error {
	addr := strings.TrimSpace(c.TokenAddress)
	if !strings.HasPrefix(addr, "0x") || len(addr) != 42 {
		return fmt.Errorf("token_address must be a 0x-prefixed 20-byte hex address (got %q)", c.TokenAddress)
	}
	if c.ChainID <= 0 {
		return fmt.Errorf("chain_id must be > 0 (got %d)", c.ChainID)
	}
	return nil
}

func (c *DistributionConfig) validate() error {
	if c.CapBasisPoints <= 0 || c.CapBasisPoints > 10000 {
		return fmt.Errorf("cap_basis_points must be in (0, 10000] (got %d)", c.CapBasisPoints)
	}
	return nil
}

func (c *PatternConfig) validate() error {
	if c.SimilarityThreshold <= -1 || c.SimilarityThreshold >= 1 {
		return fmt.Errorf("similarity_threshold must be in (-1, 1) (got %v)", c.SimilarityThreshold)
	}
	if c.MaxResults <= 0 {
		return fmt.Errorf("max_results must be > 0 (got %d)", c.MaxResults)
	}
	return nil
}
