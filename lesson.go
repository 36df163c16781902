package lazyfoo

import (
	"fmt"
	"sort"
	"strconv"
	"sync"
)

// Lesson is a single runnable demonstration.
type Lesson struct {
	Number  int
	Name    string
	Summary string
	Run     func()
}

var (
	mutex   sync.Mutex
	lessons = make(map[string]Lesson)
)

// Register adds a lesson to the registry. It panics on a duplicate name or number.
func Register(l Lesson) {
	mutex.Lock()
	defer mutex.Unlock()

	if l.Run == nil {
		panic(fmt.Sprintf("lesson %q has no entry point", l.Name))
	}
	if _, ok := lessons[l.Name]; ok {
		panic(fmt.Sprintf("lesson %q registered twice", l.Name))
	}
	for _, other := range lessons {
		if other.Number == l.Number {
			panic(fmt.Sprintf("lesson %q reuses number %d of %q", l.Name, l.Number, other.Name))
		}
	}
	lessons[l.Name] = l
}

// Lessons returns every registered lesson in tutorial order.
func Lessons() []Lesson {
	mutex.Lock()
	defer mutex.Unlock()

	out := make([]Lesson, 0, len(lessons))
	for _, l := range lessons {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out
}

// Lookup finds a lesson by its name or its number.
func Lookup(key string) (Lesson, bool) {
	mutex.Lock()
	defer mutex.Unlock()

	if l, ok := lessons[key]; ok {
		return l, true
	}
	if n, err := strconv.Atoi(key); err == nil {
		for _, l := range lessons {
			if l.Number == n {
				return l, true
			}
		}
	}
	return Lesson{}, false
}
