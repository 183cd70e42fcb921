package domain

// BulkItem 单条投递的处理结果
type BulkItem struct {
	ID     int64
	OK     bool
	Reason string
}

type BulkResult struct {
	BatchID   string
	Status    Status
	Succeeded int
	Failed    int
	Items     []BulkItem
}

func (r BulkResult) PartialFailure() bool {
	return r.Failed > 0
}

// UniqueIDs 去重，保持第一次出现的顺序
func UniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	res := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		res = append(res, id)
	}
	return res
}
