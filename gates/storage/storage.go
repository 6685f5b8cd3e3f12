package storage

import "github.com/pkg/errors"

var (
	// ErrAbsentReference возвращается при попытке разыменовать отсутствующую ссылку на узел
	ErrAbsentReference = errors.New("dereference of absent node reference")
	// ErrReleased возвращается при любом обращении к уже освобожденному списку
	ErrReleased = errors.New("list already released")
)

// Storage описывает односвязный список целых чисел
type Storage interface {
	// Len возвращает количество элементов
	Len() int
	// Append добавляет элемент в конец
	Append(value int) error
	// Render возвращает строковое представление вида "[1]->[2]->null"
	Render() (string, error)
	// Values возвращает элементы в порядке обхода
	Values() []int
	// Release освобождает все узлы и сам список
	Release() error
}
