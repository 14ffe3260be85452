package main

import (
	"flag"
	"fmt"

	"capstone-hub/internal/session"
)

func (cli *commandLine) login(args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	role := fs.String("role", "", "manager, leader or team-leader")
	passcode := fs.String("passcode", "", "role passcode, if one is configured")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *role == "" {
		fs.Usage()
		return errHelp
	}

	token, identity, err := cli.provider.Login(*role, *passcode)
	if err != nil {
		return err
	}
	fmt.Printf("logged in as %s (%s)\n", identity, *role)
	fmt.Printf("export %s=%s\n", tokenEnv, token)
	return nil
}

func (cli *commandLine) hashpass(args []string) error {
	fs := flag.NewFlagSet("hashpass", flag.ExitOnError)
	passcode := fs.String("passcode", "", "passcode to hash")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *passcode == "" {
		fs.Usage()
		return errHelp
	}
	hash, err := session.HashPasscode(*passcode)
	if err != nil {
		return err
	}
	fmt.Println(hash)
	return nil
}
