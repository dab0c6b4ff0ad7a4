package geoloc_test

import (
	"strings"
	"sync"
	"testing"

	geoloc "github.com/tqwhitetech/geoloc"
)

func TestCheckerConcurrent(t *testing.T) {
	docXML := `<?xml version="1.0"?>
<Point srsName="http://metadata.ces.mil/mdr/ns/GSIP/crs/WGS84E_3D">
  <pos>38.8895 -77.0352 19.0</pos>
</Point>`

	checker := geoloc.NewChecker()

	const goroutines = 8
	const iterations = 25

	errCh := make(chan error, goroutines*iterations)
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < iterations; j++ {
				verdict, err := checker.CheckReader(strings.NewReader(docXML), geoloc.TypePointWGS84E3D)
				if err != nil {
					errCh <- err
					return
				}
				if !verdict.OK {
					errCh <- verdict.Err()
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		t.Fatalf("concurrent Check error: %v", err)
	}
}

func TestCheckerConcurrentSharedFragment(t *testing.T) {
	docXML := `<Point srsName="http://metadata.ces.mil/mdr/ns/GSIP/crs/WGS84E_3D"><pos>1 2 3</pos></Point>`

	doc := parseRoot(t, docXML)
	checker := geoloc.NewChecker()

	const goroutines = 8
	var wg sync.WaitGroup
	errCh := make(chan error, goroutines)
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			verdict, err := checker.Check(doc, geoloc.TypePointWGS84E3D)
			if err != nil {
				errCh <- err
				return
			}
			if !verdict.OK {
				errCh <- verdict.Err()
			}
		}()
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		t.Fatalf("concurrent Check error: %v", err)
	}
}
