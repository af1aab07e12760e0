package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"gesturebackup/internal/backup"
	"gesturebackup/internal/drives"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7aa2f7"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#9ece6a"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#565f89"))
	noteStyle   = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("#565f89"))
)

var volumesCmd = &cobra.Command{
	Use:   "volumes",
	Short: "List mounted volumes and whether a backup could use them",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		e, err := setup(false)
		if err != nil {
			return err
		}
		defer e.close()

		var required uint64
		if e.cfg.SourceDir != "" {
			if required, err = backup.RequiredBytes(e.cfg.SourceDir, e.cfg.Filter()); err != nil {
				e.log.WithError(err).Warn("could not size source folder")
			}
		}

		vols, err := drives.NewLocator(e.log).List(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), renderVolumes(vols, required))
		return nil
	},
}

var volumeColumns = []struct {
	title string
	width int
}{
	{"MOUNT", 28}, {"DEVICE", 16}, {"FS", 8}, {"FREE", 10}, {"REMOVABLE", 10}, {"WRITABLE", 9}, {"ELIGIBLE", 8},
}

func renderVolumes(vols []drives.VolumeInfo, required uint64) string {
	var b strings.Builder

	cells := make([]string, len(volumeColumns))
	for i, c := range volumeColumns {
		cells[i] = headerStyle.Width(c.width).Render(c.title)
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...) + "\n")

	for _, vol := range vols {
		usable := vol.Eligible(required) && !vol.SystemRoot()
		row := []string{
			vol.MountPoint,
			vol.Device,
			vol.Fstype,
			drives.FormatBytes(vol.AvailableBytes),
			yesNo(vol.Removable),
			yesNo(!vol.ReadOnly),
			yesNo(usable),
		}
		style := dimStyle
		if usable {
			style = okStyle
		}
		for i, c := range volumeColumns {
			cells[i] = style.Width(c.width).MaxWidth(c.width).Render(row[i])
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...) + "\n")
	}

	if len(vols) == 0 {
		b.WriteString(noteStyle.Render("no mounted volumes found") + "\n")
	}
	b.WriteString(noteStyle.Render(fmt.Sprintf("eligible: removable, writable, more than %s free", drives.FormatBytes(required))) + "\n")
	return b.String()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
