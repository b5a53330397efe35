package main

// Copyright (c) 2025 Colin McRae

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/predrag3141/lllreduce"
	"github.com/predrag3141/lllreduce/internal/knownanswer"
	"github.com/predrag3141/lllreduce/scalar"
)

const (
	minDimension         = 10
	dimensionIncr        = 10
	maxDimension         = 40
	numTests             = 10
	vectorElementRange   = 5
	relationElementRange = 5
)

func main() {
	if len(os.Args) != 2 {
		fmt.Println("Usage: go run main.go base_directory")
		return
	}
	for testNbr := 0; testNbr < numTests; testNbr++ {
		for dim := minDimension; dim <= maxDimension; dim += dimensionIncr {
			if err := oneVectorTest(testNbr, dim, os.Args[1], "main"); err != nil {
				fmt.Printf("%q", err.Error())
				return
			}
			if err := oneRelationTest(testNbr, dim, os.Args[1], "main"); err != nil {
				fmt.Printf("%q", err.Error())
				return
			}
		}
	}
}

func oneVectorTest(testNbr, dim int, baseDirectory, caller string) error {
	caller = fmt.Sprintf("%s-oneVectorTest", caller)
	fileName := fmt.Sprintf(
		"%s/%s/vector_test_%d-dim_%d",
		baseDirectory, time.Now().Format("2006_01_02"), testNbr, dim,
	)
	file, err := os.OpenFile(fileName, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("%s: could not open %s: %q", caller, fileName, err.Error())
	}
	defer file.Close()

	vc := knownanswer.NewVectorContext(dim, vectorElementRange)
	ctrl := lllreduce.DefaultCtrl(scalar.Real{}.Eps())
	if err := vc.Run(ctrl); err != nil {
		return fmt.Errorf("%s: %q", caller, err.Error())
	}

	resultsAsByteArray, err := json.Marshal(vc)
	if err != nil {
		return fmt.Errorf("%s: could not marshal results: %q", caller, err.Error())
	}
	return writeResults(file, string(resultsAsByteArray), caller)
}

func oneRelationTest(testNbr, dim int, baseDirectory, caller string) error {
	caller = fmt.Sprintf("%s-oneRelationTest", caller)
	fileName := fmt.Sprintf(
		"%s/%s/relation_test_%d-dim_%d",
		baseDirectory, time.Now().Format("2006_01_02"), testNbr, dim,
	)
	file, err := os.OpenFile(fileName, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("%s: could not open %s: %q", caller, fileName, err.Error())
	}
	defer file.Close()

	rc, err := knownanswer.NewRelationContext(dim, relationElementRange)
	if err != nil {
		return fmt.Errorf("%s: %q", caller, err.Error())
	}
	ctrl := lllreduce.DefaultCtrl(scalar.Real{}.Eps())
	if err := rc.Run(ctrl); err != nil {
		return fmt.Errorf("%s: %q", caller, err.Error())
	}

	resultsAsByteArray, err := json.Marshal(rc)
	if err != nil {
		return fmt.Errorf("%s: could not marshal results: %q", caller, err.Error())
	}
	return writeResults(file, string(resultsAsByteArray), caller)
}

func writeResults(file *os.File, results, caller string) error {
	caller = fmt.Sprintf("%s-writeResults", caller)
	_, err := file.WriteString(results)
	if err != nil {
		return fmt.Errorf("%s: Error writing to file: %q", caller, err)
	}
	return nil
}
