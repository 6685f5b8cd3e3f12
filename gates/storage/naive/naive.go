// Package naive реализует список, в котором добавление в конец
// всегда прицепляет узел к хвосту и не обрабатывает случай пустого списка.
// Разыменование отсутствующего хвоста возвращается как ErrAbsentReference, без паники.
package naive

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"intList/gates/storage"
)

type node struct {
	value    int
	nextNode *node
}

type List struct {
	length    int
	firstNode *node
	lastNode  *node
	released  bool
}

// NewList создает новый пустой список
func NewList() *List {
	return &List{}
}

// Len возвращает количество элементов в списке
func (l *List) Len() int {
	return l.length
}

// Append добавляет элемент в конец, всегда через lastNode
func (l *List) Append(value int) error {
	if l.released {
		return errors.Wrap(storage.ErrReleased, "naive append")
	}
	if l.lastNode == nil {
		return errors.Wrapf(storage.ErrAbsentReference, "naive append %d: tail", value)
	}

	l.lastNode.nextNode = &node{value: value}
	l.lastNode = l.lastNode.nextNode
	l.length++
	return nil
}

// Render возвращает строковое представление списка
func (l *List) Render() (string, error) {
	if l.released {
		return "", errors.Wrap(storage.ErrReleased, "naive render")
	}

	var b strings.Builder
	for currentNode := l.firstNode; currentNode != nil; currentNode = currentNode.nextNode {
		fmt.Fprintf(&b, "[%d]->", currentNode.value)
	}
	b.WriteString("null")
	return b.String(), nil
}

// Values возвращает значения в порядке обхода
func (l *List) Values() []int {
	var values []int
	for currentNode := l.firstNode; currentNode != nil; currentNode = currentNode.nextNode {
		values = append(values, currentNode.value)
	}
	return values
}

// Release отвязывает все узлы и помечает список освобожденным
func (l *List) Release() error {
	if l.released {
		return errors.Wrap(storage.ErrReleased, "naive release")
	}

	var next *node
	for currentNode := l.firstNode; currentNode != nil; currentNode = next {
		next = currentNode.nextNode
		currentNode.nextNode = nil
	}
	l.firstNode = nil
	l.lastNode = nil
	l.length = 0
	l.released = true
	return nil
}
