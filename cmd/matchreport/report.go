package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/sahilchouksey/unimatch-api/model"
	"github.com/sahilchouksey/unimatch-api/services"
	"github.com/sahilchouksey/unimatch-api/services/eligibility"
	"github.com/sahilchouksey/unimatch-api/services/scoring"
)

// report is everything printed for one student
type report struct {
	Student   *model.Student
	TopSeven  services.Score
	All       services.Score
	Courses   []eligibility.Match
	Bursaries []eligibility.Match
}

func buildReport(ctx context.Context, svc *services.StudentService, studentID uint, eligibleOnly bool) (*report, error) {
	student, err := svc.GetStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	rep := &report{Student: student}

	if rep.TopSeven, err = svc.GetScore(ctx, studentID, scoring.VariantTopSeven); err != nil {
		return nil, err
	}
	if rep.All, err = svc.GetScore(ctx, studentID, scoring.VariantAllSubjects); err != nil {
		return nil, err
	}
	if len(student.MarkSet()) == 0 {
		return rep, nil
	}
	if rep.Courses, err = svc.CourseMatches(ctx, studentID, eligibleOnly); err != nil {
		return nil, err
	}
	if rep.Bursaries, err = svc.BursaryMatches(ctx, studentID, eligibleOnly); err != nil {
		return nil, err
	}
	return rep, nil
}

var heading = color.New(color.FgYellow, color.Bold)

func render(w io.Writer, rep *report) {
	s := rep.Student
	name := strings.TrimSpace(s.FirstName + " " + s.LastName)
	if name == "" {
		name = s.Email
	}
	heading.Fprintf(w, "\n%s <%s>\n", name, s.Email)

	marks := s.MarkSet()
	if len(marks) == 0 {
		color.New(color.FgRed).Fprintln(w, "No marks recorded")
		return
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Subject", "Mark", "Points"})
	for _, subject := range marks.Ordered() {
		table.Append([]string{
			subject.Label(),
			fmt.Sprintf("%d%%", marks[subject]),
			strconv.Itoa(scoring.Points(marks[subject])),
		})
	}
	table.SetFooter([]string{"APS", fmt.Sprintf("top seven %d", rep.TopSeven.APS), fmt.Sprintf("all subjects %d", rep.All.APS)})
	table.Render()

	renderMatches(w, "Courses", rep.Courses)
	renderMatches(w, "Bursaries", rep.Bursaries)
}

func renderMatches(w io.Writer, title string, matches []eligibility.Match) {
	eligible := len(eligibility.Eligible(matches))
	heading.Fprintf(w, "\n%s (%d of %d eligible)\n", title, eligible, len(matches))
	if len(matches) == 0 {
		return
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Name", "Eligible", "Missing"})
	table.SetAutoWrapText(false)
	for _, m := range matches {
		status := "no"
		if m.Result.Eligible {
			status = "yes"
		}
		table.Append([]string{
			strconv.FormatUint(uint64(m.ID), 10),
			m.Name,
			status,
			strings.Join(m.Result.Missing, "; "),
		})
	}
	table.Render()
}
