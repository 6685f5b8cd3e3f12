package pkg

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/pkg/errors"
)

const (
	errorTag   = "[ERROR]"
	messageTag = "(msg)"
)

// WrappedError обертывает ошибку именем функции и комментарием и пишет ее в логи.
// Реализует интерфейс error, а также Cause() для github.com/pkg/errors.
// Дополнительно умеет выводить в логи обычные сообщения.
type WrappedError struct {
	functionName string   // Где произошла ошибка
	comment      string   // Что именно вызвало ошибку
	err          error    // Обернутая ошибка
	timestamp    string   // Время последнего Specify()
	logFile      *os.File // Файл для дублирования логов, может быть nil
}

// NewWrappedError создает WrappedError с именем функции, но без ошибки.
func NewWrappedError(funcName string) *WrappedError {
	return &WrappedError{functionName: funcName, timestamp: "[]"}
}

// NewWrappedErrorWithFile аналогична NewWrappedError, но дополнительно пишет логи в файл path.
// Пустой path равносилен NewWrappedError.
func NewWrappedErrorWithFile(funcName, path string) (*WrappedError, error) {
	e := NewWrappedError(funcName)
	if path == "" {
		return e, nil
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, errors.Wrapf(err, "open log file %q", path)
	}
	e.logFile = file
	return e, nil
}

// Specify запоминает ошибку и комментарий, если err не nil.
func (e *WrappedError) Specify(err error, comment string) *WrappedError {
	if err != nil {
		e.err = err
		e.comment = comment
		e.timestamp = fmt.Sprintf("[%s]", time.Now().Format(time.RFC3339))
	}
	return e
}

// Err возвращает сам WrappedError, если ошибка была указана, иначе nil
func (e *WrappedError) Err() error {
	if e.err == nil {
		return nil
	}
	return e
}

func (e *WrappedError) Error() string {
	if e.err == nil {
		return ""
	}
	return fmt.Sprintf("'%s' in function '%s' invoked '%s'", e.comment, e.functionName, e.err.Error())
}

func (e *WrappedError) Cause() error {
	return e.err
}

func (e *WrappedError) Unwrap() error {
	return e.err
}

// LogError пишет ошибку в лог и в файл логов, если он открыт. Без ошибки ничего не делает.
func (e *WrappedError) LogError() {
	if e.err == nil {
		return
	}
	e.write(e.timestamp, errorTag, e.Error())
}

// LogMsg пишет в лог сообщение, которое не является ошибкой.
func (e *WrappedError) LogMsg(msg string) {
	msgTimestamp := fmt.Sprintf("[%s]", time.Now().Format(time.RFC3339))
	e.write(msgTimestamp, messageTag, fmt.Sprintf("'%s' from function '%s'", msg, e.functionName))
}

func (e *WrappedError) write(timestamp, tag, text string) {
	log.Println(timestamp, tag, text)
	if e.logFile != nil {
		if _, err := fmt.Fprintln(e.logFile, timestamp, tag, text); err != nil {
			log.Println("Failed to write log into opened file:", err)
		}
	}
}

// Close закрывает файл логов, если он был открыт.
func (e *WrappedError) Close() error {
	if e.logFile == nil {
		return nil
	}
	err := e.logFile.Close()
	e.logFile = nil
	return err
}
