package snowflake

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/snowflake"
	"github.com/ecodeclub/ekit/syncx"
)

type IDGenerator interface {
	Generate(biz uint) (ID, error)
}

// DottingIDGenerator 按业务线切分的雪花ID生成器，键为业务线编号
type DottingIDGenerator struct {
	nodes syncx.Map[uint, *snowflake.Node]
}

const (
	maxNode uint = 31
	maxBiz  uint = 31
)

var (
	ErrExceedNode = errors.New("node超出限制")
	ErrExceedBiz  = errors.New("biz超出限制")
	ErrUnknownBiz = errors.New("未知的业务线")
)

// +---------------------------------------------------------------------------------------+
// | 1 Bit Unused | 41 Bit Timestamp |  5 Bit BizID | 5 Bit NodeID  |   12 Bit Sequence ID |
// +---------------------------------------------------------------------------------------+

// NewDottingIDGenerator node表示第几个节点，bizs表示有几条业务线，从0开始排序，最多到31
func NewDottingIDGenerator(nodeId uint, bizs uint) (*DottingIDGenerator, error) {
	nodeMap := syncx.Map[uint, *snowflake.Node]{}
	if nodeId > maxNode {
		return nil, fmt.Errorf("%w", ErrExceedNode)
	}
	if bizs > maxBiz+1 {
		return nil, fmt.Errorf("%w", ErrExceedBiz)
	}
	for i := 0; i < int(bizs); i++ {
		nid := (i << 5) | int(nodeId)
		n, err := snowflake.NewNode(int64(nid))
		if err != nil {
			return nil, err
		}
		nodeMap.Store(uint(i), n)
	}
	return &DottingIDGenerator{
		nodes: nodeMap,
	}, nil
}

type ID int64

func (c *DottingIDGenerator) Generate(biz uint) (ID, error) {
	n, ok := c.nodes.Load(biz)
	if !ok {
		return 0, fmt.Errorf("%w", ErrUnknownBiz)
	}
	id := n.Generate()
	return ID(id), nil
}

func (f ID) BizID() uint {
	node := snowflake.ID(f).Node()
	return uint(node >> 5)
}

func (f ID) Int64() int64 {
	return int64(f)
}
