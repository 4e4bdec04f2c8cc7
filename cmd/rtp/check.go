package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/carlosqueiroz/rtp-connect/record"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/scott-cotton/cli"
)

var errCheck = errors.New("check failed")

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"File", "Patient", "Plan", "Prescriptions", "Fields", "Control Points", "Status"})
	failed := 0
	for _, file := range args {
		plan, err := readPlan(cfg.MainConfig, cc, file)
		if err != nil {
			failed++
			cfg.Log.Error("check", "file", file, "error", err)
			tw.AppendRow(table.Row{file, "", "", "", "", "", "error: " + err.Error()})
			continue
		}
		tw.AppendRow(checkRow(file, plan))
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
	})
	if err := writeTable(cc.Out, tw.Render()); err != nil {
		return err
	}
	if failed != 0 {
		return fmt.Errorf("%w: %d of %d files", errCheck, failed, len(args))
	}
	return nil
}

func writeTable(w io.Writer, s string) error {
	_, err := io.WriteString(w, s+"\n")
	return err
}

func checkRow(file string, plan *record.Plan) table.Row {
	counts := map[record.Keyword]int{}
	for _, r := range record.Flatten(plan) {
		counts[r.Keyword()]++
	}
	return table.Row{
		file,
		patientName(plan),
		plan.PlanID.String(),
		strconv.Itoa(counts[record.KeywordPrescription]),
		strconv.Itoa(counts[record.KeywordField]),
		strconv.Itoa(counts[record.KeywordControlPoint]),
		"ok",
	}
}

func patientName(plan *record.Plan) string {
	var parts []string
	for _, v := range []record.Value{plan.PatientLastName, plan.PatientFirstName} {
		if !v.IsEmpty() {
			parts = append(parts, v.String())
		}
	}
	name := strings.Join(parts, ", ")
	switch {
	case plan.PatientID.IsEmpty():
		return name
	case name == "":
		return plan.PatientID.String()
	}
	return fmt.Sprintf("%s (%s)", name, plan.PatientID.String())
}
