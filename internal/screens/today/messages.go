package today

import (
	"time"

	"github.com/thinkle/deep/internal/api"
)

// questionLoadedMsg is sent when today's question has been fetched.
type questionLoadedMsg struct {
	Question    *api.DailyQuestion
	PrimingSeen bool
	Err         error
}

// timerTickMsg is sent every second to update the countdown.
type timerTickMsg time.Time

// submitResultMsg is sent when the scorer's verdict arrives.
type submitResultMsg struct {
	Result *api.AnswerResult
	Err    error
}
