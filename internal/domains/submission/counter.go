package submission

import "sync"

// ============================================================
// Counter
// ============================================================
// Counter đếm số submissions đã pass validation từ lúc process start
// Đây là bản struct-hóa của closure counter idiom:
// thay vì module-level mutable state, counter là owned instance
// được inject vào service (single writer)
//
// Giá trị KHÔNG persist - restart process là về 0
type Counter struct {
	mu    sync.Mutex
	count int64
}

func NewCounter() *Counter {
	return &Counter{}
}

// Increment cộng 1 và trả về giá trị mới (increment-and-read)
func (c *Counter) Increment() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.count++
	return c.count
}

// Value trả về giá trị hiện tại mà không thay đổi counter
func (c *Counter) Value() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count
}
