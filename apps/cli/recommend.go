package main

import (
	"context"
	"fmt"
)

func (cli *commandLine) recommend() error {
	view, err := cli.svc.Recommend(context.Background())
	if err != nil {
		return err
	}
	if len(view.RecommendedCourses) == 0 {
		fmt.Fprintln(cli.out, view.Message)
		return nil
	}
	for i, c := range view.RecommendedCourses {
		fmt.Fprintf(cli.out, "%d. %s\n   %s\n", i+1, c.Name, c.Reason)
		for _, m := range c.LearningMaterials {
			check := " "
			if m.Completed {
				check = "x"
			}
			fmt.Fprintf(cli.out, "   [%s] %-7s %s <%s>\n", check, m.Type, m.Title, m.URL)
		}
	}
	return nil
}

func (cli *commandLine) completeRecommended(title, url string) error {
	if err := cli.svc.MarkRecommendedComplete(context.Background(), title, url); err != nil {
		return err
	}
	fmt.Fprintln(cli.out, "Marked as complete.")
	return nil
}
