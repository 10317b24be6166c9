package cli

import (
	"context"
	"fmt"
	"os"
)

func (a *App) Register(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	name, err := GetSimpleText(a.reader, "Enter display name (optional)", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	user, err := a.client.Register(ctx, email, password, name)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	fmt.Printf("Registered %s\n", user.Email)
	return nil
}

func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	if err := a.client.Login(ctx, email, password); err != nil {
		fmt.Println(err.Error())
		return err
	}

	fmt.Println("Success!")
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.client.Logout()
	fmt.Println("Logged out")
	return nil
}

func (a *App) Whoami(ctx context.Context) error {
	user, err := a.client.Profile(ctx)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}
	fmt.Printf("%s (%s)\n", user.Email, user.ID)
	return nil
}
