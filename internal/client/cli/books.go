package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
)

func (a *App) List(ctx context.Context) error {
	books, err := a.client.ListBooks(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if len(books) == 0 {
		printlnFn("No books yet")
		return nil
	}

	for _, b := range books {
		printlnFn(fmt.Sprintf("%d: %s", b.ID, b.Title))
	}
	return nil
}

func (a *App) Add(ctx context.Context) error {
	title, err := GetSimpleText(a.reader, "Enter title", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	book, err := a.client.AddBook(ctx, title)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	printlnFn(fmt.Sprintf("Added %d: %s", book.ID, book.Title))
	return nil
}

func (a *App) Delete(ctx context.Context) error {
	raw, err := GetSimpleText(a.reader, "Enter book id", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		log.Printf("error: invalid id %q", raw)
		return err
	}

	if err := a.client.DeleteBook(ctx, id); err != nil {
		log.Printf("error: %v", err)
		return err
	}

	printlnFn("Deleted")
	return nil
}
