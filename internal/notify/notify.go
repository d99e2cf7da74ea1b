package notify

import (
	"github.com/sirupsen/logrus"
)

// Notifier is the transient-message surface the stores report mutation
// outcomes to. Every mutation produces exactly one call: Success or Error.
type Notifier interface {
	Success(title, description string)
	Error(title, description string)
}

type LogNotifier struct {
	logger *logrus.Logger
}

func NewLogNotifier(logger *logrus.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Success(title, description string) {
	n.logger.WithFields(logrus.Fields{
		"title":   title,
		"variant": "default",
	}).Info(description)
}

func (n *LogNotifier) Error(title, description string) {
	n.logger.WithFields(logrus.Fields{
		"title":   title,
		"variant": "destructive",
	}).Warn(description)
}
