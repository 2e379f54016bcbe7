package testtools

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

const xyHeader = "x,y"

// CSVFile2XY read an x,y csv file into two parallel arrays
//  format:
// 	 x, y
func CSVFile2XY(fpath string) (x, y []float64, err error) {
	f, err := os.Open(fpath)
	if err != nil {
		return nil, nil, fmt.Errorf("open file err: %v", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	first := true
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, nil, fmt.Errorf("read file err: %v", err)
		}

		if first {
			first = false
			continue
		}

		if len(record) != 2 {
			return nil, nil, fmt.Errorf("invalid series csv file")
		}

		xv, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid float64 in the first column: %v", record[0])
		}

		yv, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid float64 in the second column: %v", record[1])
		}

		x = append(x, xv)
		y = append(y, yv)
	}

	return x, y, nil
}

// XY2CSVFile write two parallel arrays to an x,y csv file
func XY2CSVFile(fpath string, x, y []float64) error {
	if len(x) != len(y) {
		return fmt.Errorf("x/y length mismatch: %v != %v", len(x), len(y))
	}

	f, err := os.OpenFile(fpath, os.O_WRONLY|os.O_TRUNC|os.O_CREATE, 0666)
	if err != nil {
		return fmt.Errorf("open file err: %v", err)
	}
	defer f.Close()

	if _, err := f.WriteString(xyHeader + "\n"); err != nil {
		return fmt.Errorf("write file: %v, err: %v", fpath, err)
	}
	for i := range x {
		if _, err := f.WriteString(fmt.Sprintf("%v,%v\n", x[i], y[i])); err != nil {
			return fmt.Errorf("write file: %v, err: %v", fpath, err)
		}
	}

	return nil
}
