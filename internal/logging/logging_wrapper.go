package logging

import (
	"context"

	"github.com/sirupsen/logrus"
)

// CommandWrapper runs a console command with its own LogData and logs its
// start, completion or error along with the collected fields and timings.
func CommandWrapper(
	commandName string,
	log *logrus.Entry,
	command func(ctx context.Context, logData *LogData) error,
) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		logData := NewLogData(log)
		log.Debugf("Command.%v.Start", commandName)

		endTimer := logData.AddTiming("durationMs")
		err := command(WithLogData(ctx, logData), logData)
		endTimer()
		if err != nil {
			logData.Log().WithError(err).Errorf("Command.%v.Error", commandName)
			return err
		}

		logData.Log().Infof("Command.%v.Complete", commandName)
		return nil
	}
}
