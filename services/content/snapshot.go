package content

// Snapshot is the three-state result every page consumer receives for one
// content source. Loading starts true and flips false exactly once, when
// the first response (success or failure) arrives.
type Snapshot[T any] struct {
	Data    T      `json:"data"`
	Loading bool   `json:"loading"`
	Error   string `json:"error,omitempty"`
}

// NewSnapshot returns a snapshot in its initial loading state.
func NewSnapshot[T any]() Snapshot[T] {
	return Snapshot[T]{Loading: true}
}

func (s Snapshot[T]) complete(data T) Snapshot[T] {
	s.Data = data
	s.Loading = false
	s.Error = ""
	return s
}

func (s Snapshot[T]) fail(data T, msg string) Snapshot[T] {
	s.Data = data
	s.Loading = false
	s.Error = msg
	return s
}
