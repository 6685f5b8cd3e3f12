package list

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"intList/gates/storage"
)

type List struct {
	length    int    // Текущая длина списка (количество узлов)
	firstNode ref    // Первый узел, корень владения всей цепочкой
	lastNode  ref    // Последний узел (для ускорения вставки в конец), узлом не владеет
	nodes     []node // Арена, в которой хранятся узлы
	released  bool   // Выставляется в Release, после чего список непригоден
}

// NewList создает новый пустой односвязный список
func NewList() *List {
	return &List{firstNode: absent, lastNode: absent}
}

// at разыменовывает ссылку. Отсутствующая ссылка дает ErrAbsentReference вместо паники.
func (l *List) at(r ref) (*node, error) {
	if r == absent || int(r) > len(l.nodes) {
		return nil, errors.Wrapf(storage.ErrAbsentReference, "node ref %d", r)
	}
	return &l.nodes[r-1], nil
}

func (l *List) alloc(value int) ref {
	l.nodes = append(l.nodes, node{value: value, nextNode: absent})
	return ref(len(l.nodes))
}

// Len возвращает количество элементов в списке
func (l *List) Len() int {
	return l.length
}

// Append добавляет элемент в конец списка
func (l *List) Append(value int) error {
	if l.released {
		return errors.Wrap(storage.ErrReleased, "append")
	}

	// Случай вставки первого элемента, когда не определены первый и последний узлы
	if l.firstNode == absent {
		if l.lastNode != absent {
			return errors.Wrap(storage.ErrAbsentReference, "append: tail is set on a list without head")
		}
		newNode := l.alloc(value)
		l.firstNode = newNode
		l.lastNode = newNode
		l.length++
		return nil
	}

	// Курсор проверяется до выделения узла: указатель в арену устаревает после ее роста
	if _, err := l.at(l.lastNode); err != nil {
		return errors.Wrap(err, "append: tail cursor")
	}
	newNode := l.alloc(value)
	tail, _ := l.at(l.lastNode)
	tail.nextNode = newNode
	l.lastNode = newNode
	l.length++
	return nil
}

// Render возвращает строковое представление списка: "[1]->[2]->[3]->null".
// Пустой список дает "null".
func (l *List) Render() (string, error) {
	if l.released {
		return "", errors.Wrap(storage.ErrReleased, "render")
	}

	var b strings.Builder
	for p := l.firstNode; p != absent; {
		currentNode, err := l.at(p)
		if err != nil {
			return "", errors.Wrap(err, "render")
		}
		b.WriteString("[")
		b.WriteString(strconv.Itoa(currentNode.value))
		b.WriteString("]->")
		p = currentNode.nextNode
	}
	b.WriteString("null")
	return b.String(), nil
}

// String реализует fmt.Stringer
func (l *List) String() string {
	s, err := l.Render()
	if err != nil {
		return "<released>"
	}
	return s
}

// Values возвращает значения в порядке обхода. Для пустого списка возвращает nil.
func (l *List) Values() []int {
	if l.released || l.length == 0 {
		return nil
	}

	values := make([]int, 0, l.length)
	for p := l.firstNode; p != absent; {
		currentNode, err := l.at(p)
		if err != nil {
			break
		}
		values = append(values, currentNode.value)
		p = currentNode.nextNode
	}
	return values
}

// Release освобождает все узлы в порядке обхода, а затем сам список.
// Повторный вызов возвращает ErrReleased.
func (l *List) Release() error {
	if l.released {
		return errors.Wrap(storage.ErrReleased, "release")
	}

	var walkErr error
	var next ref
	for p := l.firstNode; p != absent; p = next {
		currentNode, err := l.at(p)
		if err != nil {
			walkErr = errors.Wrap(err, "release")
			break
		}
		// Следующий узел читается до освобождения текущего
		next = currentNode.nextNode
		*currentNode = node{}
	}

	l.nodes = nil
	l.firstNode = absent
	l.lastNode = absent
	l.length = 0
	l.released = true
	return walkErr
}
