package model

import "time"

// Problem is a group of error notices in the host application.
// It is the data rendered into a new issue's description.
type Problem struct {
	AppName       string    `json:"app_name"`
	Environment   string    `json:"environment"`
	ErrorClass    string    `json:"error_class"`
	Message       string    `json:"message"`
	Where         string    `json:"where"`
	URL           string    `json:"url"` // link to the problem in the host application
	RequestURL    string    `json:"request_url,omitempty"`
	NoticesCount  int       `json:"notices_count"`
	FirstNoticeAt time.Time `json:"first_notice_at"`
	LastNoticeAt  time.Time `json:"last_notice_at"`
	Backtrace     []string  `json:"backtrace,omitempty"`
}
