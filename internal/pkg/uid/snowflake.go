package uid

import (
	"crypto/rand"
	"math/big"

	"github.com/bwmarrin/snowflake"
)

// Snowflake generates sortable int64 IDs using bwmarrin/snowflake.
type Snowflake struct {
	node *snowflake.Node
}

// NewSnowflake constructs a Snowflake generator with a random node number.
//
// A random node keeps IDs from colliding when multiple replicas start without
// coordinated node assignment.
func NewSnowflake() (*Snowflake, error) {
	maxNode := big.NewInt(1 << snowflake.NodeBits)
	n, err := rand.Int(rand.Reader, maxNode)
	if err != nil {
		return nil, err
	}

	node, err := snowflake.NewNode(n.Int64())
	if err != nil {
		return nil, err
	}

	return &Snowflake{node: node}, nil
}

// Generate returns a new snowflake ID.
func (s *Snowflake) Generate() int64 {
	return s.node.Generate().Int64()
}
