package list

import "go-cartmaster/modules/card/dto"

type ListCardsQuery struct{}

// ListCardsByOwnerQuery ลูกค้าที่ไม่มีอยู่ได้ list ว่าง ไม่ใช่ 404
type ListCardsByOwnerQuery struct {
	OwnerID int64
}

type ListCardsWithOwnersQuery struct{}

type ListCardsQueryResult struct {
	Cards []*dto.CardResponse
}

type ListCardsWithOwnersQueryResult struct {
	Cards []*dto.CardWithOwnerResponse
}
