package listDemo

import (
	"fmt"
	"io"
	"log"

	"github.com/charmbracelet/lipgloss"
	"github.com/goccy/go-json"
	"github.com/pkg/errors"

	"intList/gates/storage"
	"intList/models/dto"
	"intList/pkg"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat проверяет название формата вывода
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatJSON:
		return f, nil
	}
	return "", errors.Wrapf(ErrUnknownFormat, "%q", s)
}

var labelStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"})

type Demo struct {
	newStorage func() storage.Storage
	out        io.Writer
	format     Format
	styled     bool
	logFile    string
}

type Option func(*Demo)

func WithFormat(f Format) Option {
	return func(d *Demo) { d.format = f }
}

// WithStyle включает раскраску меток BEFORE/AFTER
func WithStyle(styled bool) Option {
	return func(d *Demo) { d.styled = styled }
}

// WithLogFile дублирует логи прогона в файл
func WithLogFile(path string) Option {
	return func(d *Demo) { d.logFile = path }
}

// NewDemo создает демонстрацию, которая берет новый список из newStorage и печатает в out
func NewDemo(newStorage func() storage.Storage, out io.Writer, opts ...Option) *Demo {
	d := &Demo{newStorage: newStorage, out: out, format: FormatText}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Run создает пустой список, выводит его, добавляет values по порядку,
// выводит еще раз и освобождает список.
// При ошибке на любом шаге список освобождается, а ошибка возвращается обернутой в *pkg.WrappedError.
func (d *Demo) Run(values []int) (*dto.Report, error) {
	wErr, err := pkg.NewWrappedErrorWithFile("(d *Demo) Run()", d.logFile)
	if err != nil {
		log.Println("(d *Demo) Run: NewWrappedErrorWithFile()", err)
		wErr = pkg.NewWrappedError("(d *Demo) Run()")
	}
	defer wErr.Close()

	st := d.newStorage()
	report := dto.NewReport()

	// Список до добавления элементов
	report.Before, err = st.Render()
	if err != nil {
		return nil, d.fail(st, wErr.Specify(err, "st.Render() before"))
	}
	if err = d.printLine("BEFORE:", report.Before); err != nil {
		return nil, d.fail(st, wErr.Specify(err, "d.printLine(BEFORE)"))
	}

	for _, v := range values {
		if err = st.Append(v); err != nil {
			return nil, d.fail(st, wErr.Specify(err, fmt.Sprintf("st.Append(%d)", v)))
		}
	}

	// Список после добавления элементов
	report.After, err = st.Render()
	if err != nil {
		return nil, d.fail(st, wErr.Specify(err, "st.Render() after"))
	}
	if stored := st.Values(); stored != nil {
		report.Values = stored
	}
	report.Length = st.Len()
	if err = d.printLine("AFTER:", report.After); err != nil {
		return nil, d.fail(st, wErr.Specify(err, "d.printLine(AFTER)"))
	}

	if err = st.Release(); err != nil {
		wErr.Specify(err, "st.Release()").LogError()
		return nil, wErr
	}

	if d.format == FormatJSON {
		if err = json.NewEncoder(d.out).Encode(report); err != nil {
			wErr.Specify(errors.Wrap(err, "encode report"), "json.NewEncoder(d.out).Encode(report)").LogError()
			return nil, wErr
		}
	}

	wErr.LogMsg(fmt.Sprintf("OK - run: {length: %d}", report.Length))
	return report, nil
}

// fail логирует ошибку и освобождает список, чтобы он не остался без владельца
func (d *Demo) fail(st storage.Storage, wErr *pkg.WrappedError) error {
	wErr.LogError()
	if err := st.Release(); err != nil {
		pkg.NewWrappedError("(d *Demo) fail()").Specify(err, "st.Release()").LogError()
	}
	return wErr
}

func (d *Demo) printLine(label, text string) error {
	if d.format != FormatText {
		return nil
	}
	if d.styled {
		label = labelStyle.Render(label)
	}
	_, err := fmt.Fprintln(d.out, label, text)
	return err
}
