package main

import (
	"fmt"

	"github.com/mgnsk/orderlist"
)

func main() {
	// The list is created with its first item.
	tasks := orderlist.New("deploy")

	// Insert at arbitrary positions without renumbering.
	if err := tasks.InsertBefore("deploy", "build"); err != nil {
		panic(err)
	}
	if err := tasks.InsertAfter("build", "test"); err != nil {
		panic(err)
	}
	tasks.PushFront("checkout")

	// O(1) order comparison between any two items.
	fmt.Println(tasks.Before("build", "deploy"))    // true
	fmt.Println(tasks.Before("deploy", "checkout")) // false

	tasks.Range(func(task string) bool {
		fmt.Println(task)
		return true
	})
}
