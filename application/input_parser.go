package application

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrNotNumeric is returned when console input is not an integer
var ErrNotNumeric = errors.New("only numbers are allowed")

const numberDelimiter = ","

// ParseAmount parses a purchase amount such as "14000"
func ParseAmount(input string) (int64, error) {
	value, err := strconv.ParseInt(strings.TrimSpace(input), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotNumeric, input)
	}
	return value, nil
}

// ParseNumber parses a single number such as the bonus ball
func ParseNumber(input string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotNumeric, input)
	}
	return value, nil
}

// ParseNumbers parses a comma separated list such as "1, 2, 3, 4, 5, 6".
// Blank input yields an empty, non-nil slice so size validation reports it.
func ParseNumbers(input string) ([]int, error) {
	numbers := []int{}
	if strings.TrimSpace(input) == "" {
		return numbers, nil
	}

	for _, part := range strings.Split(input, numberDelimiter) {
		n, err := ParseNumber(part)
		if err != nil {
			return nil, err
		}
		numbers = append(numbers, n)
	}
	return numbers, nil
}

// ParseTicketList parses tickets separated by ';', each a comma separated list
func ParseTicketList(input string) ([][]int, error) {
	var tickets [][]int
	for _, part := range strings.Split(input, ";") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		numbers, err := ParseNumbers(part)
		if err != nil {
			return nil, fmt.Errorf("failed to parse ticket %q: %w", part, err)
		}
		tickets = append(tickets, numbers)
	}
	return tickets, nil
}
