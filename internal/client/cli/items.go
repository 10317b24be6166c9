package cli

import (
	"context"
	"fmt"
	"os"
)

func (a *App) List(ctx context.Context) error {
	items, err := a.client.ListItems(ctx)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	if len(items) == 0 {
		fmt.Println("No items")
		return nil
	}
	for _, item := range items {
		fmt.Printf("%s  %s  %s\n", item.ID, item.Name, item.Description)
	}
	return nil
}

func (a *App) Show(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Enter item id", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	item, err := a.client.GetItem(ctx, id)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	fmt.Printf("id: %s\nowner: %s\nname: %s\ndescription: %s\ncreated: %s\nupdated: %s\n",
		item.ID, item.OwnerID, item.Name, item.Description, item.CreatedAt, item.UpdatedAt)
	return nil
}

func (a *App) Add(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	description, err := GetSimpleText(a.reader, "Enter description (optional)", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	item, err := a.client.AddItem(ctx, name, description)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	fmt.Printf("Created %s\n", item.ID)
	return nil
}

func (a *App) Update(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Enter item id", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	name, err := GetSimpleText(a.reader, "New name (empty to keep)", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	description, err := GetSimpleText(a.reader, "New description (empty to keep)", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	var namePtr, descPtr *string
	if name != "" {
		namePtr = &name
	}
	if description != "" {
		descPtr = &description
	}

	item, err := a.client.UpdateItem(ctx, id, namePtr, descPtr)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	fmt.Printf("Updated %s\n", item.ID)
	return nil
}

func (a *App) Delete(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Enter item id", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	if err := a.client.DeleteItem(ctx, id); err != nil {
		fmt.Println(err.Error())
		return err
	}

	fmt.Println("Deleted")
	return nil
}
