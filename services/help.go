package services

import (
	"bytes"
	"roomchat/domain"
	"strings"

	"github.com/olekukonko/tablewriter"
)

var commandRows = [][]string{
	{"/list", "List open rooms"},
	{"/create", "Create a room and enter it"},
	{"/join <room>", "Enter a room"},
	{"/exit", "Leave the current room"},
	{"/users", "List connected users"},
	{"/roomusers", "List users of the current room"},
	{"/whisper <nickname> <text>", "Send a private message"},
	{"/help", "Show this list"},
	{"/bye", "Disconnect"},
}

// renderHelp lays out the command list as plain text lines.
func renderHelp() []string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Command", "Description"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	table.AppendBulk(commandRows)
	table.Render()

	var lines []string
	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, strings.TrimRight(line, " \t"))
		}
	}
	return append(lines, domain.HelpFooter)
}
