package main

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/pkg/errors"

	"github.com/Ayushpund/Acharya/core/course"
)

const watchPollInterval = 50 * time.Millisecond

func (cli *commandLine) catalog(query string) error {
	courses := cli.svc.Catalog(query)
	if len(courses) == 0 {
		fmt.Fprintln(cli.out, "No courses found.")
		return nil
	}
	w := tabwriter.NewWriter(cli.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tCATEGORY\tINSTRUCTOR\tDURATION")
	for _, c := range courses {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", c.ID, c.Title, c.Category, c.Instructor, c.Duration)
	}
	return w.Flush()
}

func (cli *commandLine) enroll(courseID string) error {
	enr, err := cli.svc.Enroll(context.Background(), courseID)
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "Enrolled in %s.\n", enr.Title)
	return nil
}

func (cli *commandLine) enrollments() error {
	enrollments, err := cli.svc.Enrollments(context.Background())
	if err != nil {
		return err
	}
	if len(enrollments) == 0 {
		fmt.Fprintln(cli.out, "Not enrolled in any course yet.")
		return nil
	}
	for _, e := range enrollments {
		cli.printEnrollment(e)
	}
	return nil
}

func (cli *commandLine) printEnrollment(e course.Enrollment) {
	fmt.Fprintf(cli.out, "%s  %s (%d%%)\n", e.ID, e.Title, e.Progress)
	for _, m := range e.LearningMaterials {
		check := " "
		if m.Completed {
			check = "x"
		}
		fmt.Fprintf(cli.out, "  [%s] %-7s %s <%s>\n", check, m.Type, m.Title, m.URL)
	}
}

func (cli *commandLine) complete(courseID, url string) error {
	enr, err := cli.svc.CompleteMaterial(context.Background(), courseID, url)
	if err != nil {
		return err
	}
	cli.printEnrollment(enr)
	return nil
}

// watch starts a video material and blocks until the watch timer completed it.
func (cli *commandLine) watch(courseID, url string) error {
	started, err := cli.svc.StartVideo(context.Background(), courseID, url)
	if err != nil {
		return err
	}
	if !started {
		fmt.Fprintln(cli.out, "Nothing to watch: not a video, or already completed.")
		return nil
	}

	deadline := time.Now().Add(cli.videoDelay + time.Second)
	for cli.svc.PendingVideos() > 0 {
		if time.Now().After(deadline) {
			return errors.New("timed out waiting for the video to complete")
		}
		time.Sleep(watchPollInterval)
	}
	return cli.enrollments()
}

func (cli *commandLine) overview() error {
	ov, err := cli.svc.Overview(context.Background())
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(cli.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Total courses:\t%d\n", ov.TotalCourses)
	fmt.Fprintf(w, "Completed:\t%d\n", ov.Completed)
	fmt.Fprintf(w, "In progress:\t%d\n", ov.InProgress)
	fmt.Fprintf(w, "Not started:\t%d\n", ov.NotStarted)
	fmt.Fprintf(w, "Average progress:\t%d%%\n", ov.AverageProgress)
	return w.Flush()
}
