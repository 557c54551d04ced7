package idgen

import (
	"sync"

	"github.com/bwmarrin/snowflake"
)

var (
	node     *snowflake.Node
	nodeOnce sync.Once
)

// SetNode กำหนดหมายเลข node (0-1023) ต้องเรียกก่อนสร้าง id ครั้งแรก
func SetNode(n int64) error {
	var err error
	nodeOnce.Do(func() {
		node, err = snowflake.NewNode(n)
	})
	return err
}

// GenerateTimeRandomID สร้าง id แบบ int64 เรียงตามเวลา (snowflake)
func GenerateTimeRandomID() int64 {
	nodeOnce.Do(func() {
		// node 0 ไม่มีทางคืน error เพราะอยู่ในช่วงที่อนุญาต
		node, _ = snowflake.NewNode(0)
	})
	return node.Generate().Int64()
}
