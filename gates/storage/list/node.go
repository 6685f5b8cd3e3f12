package list

// ref ссылается на узел в арене списка: значение i соответствует nodes[i-1].
// Нулевое значение означает отсутствие узла.
type ref uint32

const absent ref = 0

type node struct {
	value    int
	nextNode ref // Ссылка на следующий узел. Узлом владеет только этот слот (или firstNode списка)
}
