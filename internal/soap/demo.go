package soap

import (
	"context"
	"fmt"
	"io"
)

// DemoOptions controls what the demo runners print.
type DemoOptions struct {
	// Raw uses the hand-built envelope where one exists.
	Raw bool
	// History prints the last request and response after each call.
	History bool
}

func (o DemoOptions) history(w io.Writer, c *conn) error {
	if !o.History {
		return nil
	}
	return c.History().Write(w)
}

// RunCalculator performs the four operations on fixed operands.
func RunCalculator(ctx context.Context, w io.Writer, c *Calculator, opts DemoOptions) error {
	if opts.Raw {
		n, err := c.RawAdd(ctx, 10, 20)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Add(10, 20) = %d\n", n)
		return opts.history(w, c.conn)
	}

	steps := []struct {
		name string
		a, b int32
		fn   func(context.Context, int32, int32) (int32, error)
	}{
		{"Add", 10, 20, c.Add},
		{"Subtract", 50, 15, c.Subtract},
		{"Multiply", 5, 9, c.Multiply},
		{"Divide", 100, 5, c.Divide},
	}
	for _, s := range steps {
		n, err := s.fn(ctx, s.a, s.b)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Result of %s(%d, %d): %d\n", s.name, s.a, s.b, n)
		if err := opts.history(w, c.conn); err != nil {
			return err
		}
	}
	return nil
}

// RunTemperature converts 20 Celsius and 68 Fahrenheit.
func RunTemperature(ctx context.Context, w io.Writer, c *TempConverter, opts DemoOptions) error {
	f, err := c.CelsiusToFahrenheit(ctx, "20")
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Convert Celsius:20 -> Fahrenheit: %s\n", f)
	if err := opts.history(w, c.conn); err != nil {
		return err
	}

	cel, err := c.FahrenheitToCelsius(ctx, "68")
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Convert Fahrenheit:68 -> Celsius: %s\n", cel)
	return opts.history(w, c.conn)
}

// RunCapitals looks up each code. A failed lookup is reported and the loop
// moves on.
func RunCapitals(ctx context.Context, w io.Writer, c *CountryInfo, codes []string, opts DemoOptions) error {
	lookup := c.CapitalCity
	if opts.Raw {
		lookup = c.RawCapitalCity
	}
	var failed int
	for _, code := range codes {
		capital, err := lookup(ctx, code)
		if err != nil {
			c.log.Sugar().Errorw("capital lookup failed", "code", code, "error", err)
			fmt.Fprintf(w, "Could not retrieve capital for %s\n", code)
			failed++
			continue
		}
		fmt.Fprintf(w, "Capital of %s: %s\n", code, capital)
		if err := opts.history(w, c.conn); err != nil {
			return err
		}
	}
	if failed == len(codes) && failed > 0 {
		return fmt.Errorf("no capital could be retrieved")
	}
	return nil
}

func RunCountries(ctx context.Context, w io.Writer, c *CountryInfo) error {
	countries, err := c.ListOfCountryNamesByCode(ctx)
	if err != nil {
		return err
	}
	for _, ct := range countries {
		fmt.Fprintf(w, "Country Code: %s, Country Name: %s\n", ct.ISOCode, ct.Name)
	}
	return nil
}

// WritePorts prints the operations of every port.
func WritePorts(w io.Writer, ports []Port) {
	for _, p := range ports {
		fmt.Fprintf(w, "Service: %s  Port: %s  Binding: %s\n", p.Service, p.Port, p.Binding)
		for _, op := range p.Operations {
			fmt.Fprintf(w, "Operation: %s\n", op)
		}
	}
}
