package main

import (
	"context"
	"fmt"

	"github.com/Ayushpund/Acharya/core/student"
)

func (cli *commandLine) register(name string, age int, interest, pwd string) error {
	std, err := cli.svc.Register(context.Background(), student.Registration{
		Name:             name,
		Age:              age,
		InterestedCourse: interest,
		Password:         pwd,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "Registered %s.\n", std.Name)
	return nil
}

func (cli *commandLine) me() error {
	std, err := cli.svc.Me(context.Background())
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "Name: %s\n", std.Name)
	if std.Age != nil {
		fmt.Fprintf(cli.out, "Age: %d\n", *std.Age)
	}
	if std.InterestedCourse != "" {
		fmt.Fprintf(cli.out, "Interested in: %s\n", std.InterestedCourse)
	}
	return nil
}

func (cli *commandLine) logout() error {
	if err := cli.svc.Logout(context.Background()); err != nil {
		return err
	}
	fmt.Fprintln(cli.out, "Logged out.")
	return nil
}
