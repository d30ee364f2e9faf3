package cursor_test

import (
	"fmt"

	"github.com/ratel-online/cursor"
)

func Example() {
	list := cursor.NewList[string]().
		WithElements([]string{"first", "second", "third", "fourth", "fifth"})

	v, _ := list.Current()
	fmt.Println(v)

	v, _ = list.Next()
	fmt.Println(v)

	v, _ = list.NextN(3)
	fmt.Println(v)

	if _, err := list.Next(); err != nil {
		fmt.Println(err)
	}

	// Output:
	// first
	// second
	// fifth
	// cursor at last element
}

func ExampleNewCursor() {
	c := cursor.NewCursor(3)
	c.SetRotation(true)
	for i := 0; i < 4; i++ {
		fmt.Println(c.Value())
		c.Increase()
	}

	// Output:
	// 0
	// 1
	// 2
	// 0
}

func ExampleList_Modify() {
	list := cursor.NewList[int]().WithElements([]int{1, 2, 3, 4, 5, 6, 7, 8})
	list.SetCursor(6)

	list.Modify(func(elements []int) []int {
		kept := elements[:0]
		for _, n := range elements {
			if n%2 == 0 {
				kept = append(kept, n)
			}
		}
		return kept
	})

	idx, _ := list.Cursor()
	v, _ := list.Current()
	fmt.Println(idx, v)

	// Output:
	// 3 8
}

func ExampleList_UpdateCursor() {
	list := cursor.NewList[int]().WithElements([]int{1, 2, 3, 4, 5, 6})
	list.SetCursor(list.Len() - 1)

	list.Retain(func(n int) bool { return n%2 == 0 })
	if _, err := list.Current(); err != nil {
		fmt.Println(err)
	}

	list.UpdateCursor()
	v, _ := list.Current()
	fmt.Println(v)

	// Output:
	// cursor out of range
	// 6
}

func ExampleList_NextAlways() {
	list := cursor.NewList[string]().
		Rotatable(true).
		WithElements([]string{"spring", "summer", "autumn", "winter"})

	for i := 0; i < 5; i++ {
		v, _ := list.NextAlways()
		fmt.Println(v)
	}

	// Output:
	// summer
	// autumn
	// winter
	// spring
	// summer
}
