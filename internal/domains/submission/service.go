package submission

import "context"

// Service là Form Controller: orchestrate validation, record construction
// và derive display record cho 1 submission event
//
// CONTROL FLOW (fixed order, short-circuit):
// 1. validate content length (gate 1)
// 2. validate terms accepted (gate 2)
// 3. build record (chỉ khi cả 2 gates pass)
// 4. serialize/parse round trip (structural equality check)
// 5. derive display record (+submissionDate)
// 6. increment counter
//
// Handler chạy synchronous, không có suspension point - kết thúc là
// form sẵn sàng cho attempt tiếp theo, không có terminal failure state.
type Service interface {
	Submit(ctx context.Context, req *SubmitRequest) (*SubmitResponse, error)
	Stats(ctx context.Context) *StatsResponse
}
