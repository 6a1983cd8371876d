package schedule

import (
	"time"

	crf "github.com/robfig/cron/v3"
)

// Cron is the minimal surface of the cron runner the scheduler needs.
type Cron interface {
	AddFunc(spec string, cmd func()) (int, error)
	Start()
	Stop()
}

type cronAdapter struct {
	cron *crf.Cron
}

func newCron(timezone *time.Location) Cron {
	return &cronAdapter{
		cron: crf.New(crf.WithLocation(timezone)),
	}
}

func (c *cronAdapter) AddFunc(spec string, cmd func()) (int, error) {
	id, err := c.cron.AddFunc(spec, cmd)
	return int(id), err
}

func (c *cronAdapter) Start() {
	c.cron.Start()
}

func (c *cronAdapter) Stop() {
	c.cron.Stop()
}
