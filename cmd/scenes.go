package cmd

import (
	"fmt"

	"github.com/df07/go-light2d/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// List the built-in scenes.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	infos := scene.List()

	table := tablewriter.NewWriter(ctx.App.Writer)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Name", "Group", "Description"})
	for _, info := range infos {
		table.Append([]string{info.ID, info.DisplayName, info.Group, info.Description})
	}
	table.SetFooter([]string{"", "", "TOTAL", fmt.Sprintf("%d", len(infos))})
	table.Render()

	return nil
}
