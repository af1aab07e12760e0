package cmd

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"gesturebackup/internal/activation"
	"gesturebackup/internal/backup"
	"gesturebackup/internal/drives"
	"gesturebackup/internal/notify"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Back up the configured source folder now",
	Long: `Runs one backup immediately, exactly as a confirmed gesture would: size the
filtered source tree, wait for a removable volume with enough space, then copy.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := acquireInstanceLock(); err != nil {
			return err
		}
		defer releaseInstanceLock()

		e, err := setup(true)
		if err != nil {
			return err
		}
		defer e.close()

		done := e.logger.LogOperationStart("backup", logrus.Fields{
			"source": e.cfg.SourceDir,
			"filter": e.cfg.Filter(),
		})
		n := e.notifier()
		var job *backup.Job
		err = activation.RunBackup(cmd.Context(), activation.BackupFunc(func(ctx context.Context) error {
			var err error
			job, err = e.engine(n).Execute(ctx, e.cfg.SourceDir, e.cfg.Filter())
			return err
		}), n, e.log)
		done(err)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s %s\n", color.GreenString(notify.CurrentSymbols.Success), job.DestPath)
		fmt.Fprintf(out, "  %s of %s copied to %s\n",
			drives.FormatBytes(job.RequiredBytes), job.SourceDir, job.Volume.Device)
		return nil
	},
}
