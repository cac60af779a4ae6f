// SPDX-License-Identifier: MIT

package kernel

import (
	"math"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/lapack"
)

// Status label values of lvnum_kernel_calls_total.
const (
	StatusOK         = "ok"
	StatusIllegalArg = "illegal_argument"
	StatusNonFinite  = "non_finite"
	StatusFailure    = "failure"
)

// Metrics holds the kernel call collectors.
type Metrics struct {
	Calls    *prometheus.CounterVec
	Duration *prometheus.HistogramVec
}

// NewMetrics creates and registers the kernel collectors on reg.
// A nil reg creates unregistered collectors.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Calls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lvnum_kernel_calls_total",
				Help: "The total number of dense kernel routine calls",
			},
			[]string{"routine", "status"},
		),
		Duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "lvnum_kernel_call_duration_seconds",
				Help:    "The duration of dense kernel routine calls in seconds",
				Buckets: prometheus.ExponentialBuckets(1e-6, 4, 12),
			},
			[]string{"routine"},
		),
	}
}

// Instrumented decorates a Real and a Complex kernel with call counters and timings.
type Instrumented struct {
	real    Real
	complex Complex
	metrics *Metrics
}

// Compile-time assertions.
var (
	_ Real    = (*Instrumented)(nil)
	_ Complex = (*Instrumented)(nil)
)

// Instrument wraps r and c. Either may be nil when only one domain is used;
// calling into a nil side panics like calling a nil interface.
func Instrument(r Real, c Complex, m *Metrics) *Instrumented {
	return &Instrumented{real: r, complex: c, metrics: m}
}

func statusOf(r Routine, info Info) string {
	switch {
	case info == 0:
		return StatusOK
	case IsNonFinite(r, info):
		return StatusNonFinite
	case info < 0:
		return StatusIllegalArg
	default:
		return StatusFailure
	}
}

func (k *Instrumented) observe(r Routine, start time.Time, info Info) Info {
	k.metrics.Calls.WithLabelValues(string(r), statusOf(r, info)).Inc()
	k.metrics.Duration.WithLabelValues(string(r)).Observe(time.Since(start).Seconds())
	return info
}

func (k *Instrumented) observeNorm(r Routine, start time.Time, v float64) float64 {
	info := Info(0)
	if math.IsNaN(v) {
		info = -1
	}
	k.observe(r, start, info)
	return v
}

func (k *Instrumented) Dgemv(trans blas.Transpose, m, n int, alpha float64, a []float64, lda int, x []float64, beta float64, y []float64) Info {
	start := time.Now()
	return k.observe(RoutineDgemv, start, k.real.Dgemv(trans, m, n, alpha, a, lda, x, beta, y))
}

func (k *Instrumented) Dgemm(transA, transB blas.Transpose, m, n, kk int, alpha float64, a []float64, lda int, b []float64, ldb int, beta float64, c []float64, ldc int) Info {
	start := time.Now()
	return k.observe(RoutineDgemm, start, k.real.Dgemm(transA, transB, m, n, kk, alpha, a, lda, b, ldb, beta, c, ldc))
}

func (k *Instrumented) Dnrm2(n int, x []float64) float64 {
	start := time.Now()
	return k.observeNorm(RoutineDnrm2, start, k.real.Dnrm2(n, x))
}

func (k *Instrumented) Dlange(m, n int, a []float64, lda int) float64 {
	start := time.Now()
	return k.observeNorm(RoutineDlange, start, k.real.Dlange(m, n, a, lda))
}

func (k *Instrumented) Dgetrf(m, n int, a []float64, lda int, ipiv []int) Info {
	start := time.Now()
	return k.observe(RoutineDgetrf, start, k.real.Dgetrf(m, n, a, lda, ipiv))
}

func (k *Instrumented) Dgetri(n int, a []float64, lda int, ipiv []int) Info {
	start := time.Now()
	return k.observe(RoutineDgetri, start, k.real.Dgetri(n, a, lda, ipiv))
}

func (k *Instrumented) Dgesv(n, nrhs int, a []float64, lda int, ipiv []int, b []float64, ldb int) Info {
	start := time.Now()
	return k.observe(RoutineDgesv, start, k.real.Dgesv(n, nrhs, a, lda, ipiv, b, ldb))
}

func (k *Instrumented) Dgels(m, n, nrhs int, a []float64, lda int, b []float64, ldb int) Info {
	start := time.Now()
	return k.observe(RoutineDgels, start, k.real.Dgels(m, n, nrhs, a, lda, b, ldb))
}

func (k *Instrumented) Dgelsy(m, n, nrhs int, a []float64, lda int, b []float64, ldb int, jpvt []int, rcond float64) (int, Info) {
	start := time.Now()
	rank, info := k.real.Dgelsy(m, n, nrhs, a, lda, b, ldb, jpvt, rcond)
	return rank, k.observe(RoutineDgelsy, start, info)
}

func (k *Instrumented) Dgeev(n int, a []float64, lda int, wr, wi []float64) Info {
	start := time.Now()
	return k.observe(RoutineDgeev, start, k.real.Dgeev(n, a, lda, wr, wi))
}

func (k *Instrumented) Dgesvd(job lapack.SVDJob, m, n int, a []float64, lda int, s, u []float64, ldu int, vt []float64, ldvt int) Info {
	start := time.Now()
	return k.observe(RoutineDgesvd, start, k.real.Dgesvd(job, m, n, a, lda, s, u, ldu, vt, ldvt))
}

func (k *Instrumented) Dgeqrf(m, n int, a []float64, lda int, tau []float64) Info {
	start := time.Now()
	return k.observe(RoutineDgeqrf, start, k.real.Dgeqrf(m, n, a, lda, tau))
}

func (k *Instrumented) Dorgqr(m, n, kk int, a []float64, lda int, tau []float64) Info {
	start := time.Now()
	return k.observe(RoutineDorgqr, start, k.real.Dorgqr(m, n, kk, a, lda, tau))
}

func (k *Instrumented) Dgelqf(m, n int, a []float64, lda int, tau []float64) Info {
	start := time.Now()
	return k.observe(RoutineDgelqf, start, k.real.Dgelqf(m, n, a, lda, tau))
}

func (k *Instrumented) Dorglq(m, n, kk int, a []float64, lda int, tau []float64) Info {
	start := time.Now()
	return k.observe(RoutineDorglq, start, k.real.Dorglq(m, n, kk, a, lda, tau))
}

func (k *Instrumented) Zgemv(trans blas.Transpose, m, n int, alpha complex128, a []complex128, lda int, x []complex128, beta complex128, y []complex128) Info {
	start := time.Now()
	return k.observe(RoutineZgemv, start, k.complex.Zgemv(trans, m, n, alpha, a, lda, x, beta, y))
}

func (k *Instrumented) Zgemm(transA, transB blas.Transpose, m, n, kk int, alpha complex128, a []complex128, lda int, b []complex128, ldb int, beta complex128, c []complex128, ldc int) Info {
	start := time.Now()
	return k.observe(RoutineZgemm, start, k.complex.Zgemm(transA, transB, m, n, kk, alpha, a, lda, b, ldb, beta, c, ldc))
}

func (k *Instrumented) Dznrm2(n int, x []complex128) float64 {
	start := time.Now()
	return k.observeNorm(RoutineDznrm2, start, k.complex.Dznrm2(n, x))
}

func (k *Instrumented) Zlange(m, n int, a []complex128, lda int) float64 {
	start := time.Now()
	return k.observeNorm(RoutineZlange, start, k.complex.Zlange(m, n, a, lda))
}

func (k *Instrumented) Zgetrf(m, n int, a []complex128, lda int, ipiv []int) Info {
	start := time.Now()
	return k.observe(RoutineZgetrf, start, k.complex.Zgetrf(m, n, a, lda, ipiv))
}

func (k *Instrumented) Zgetri(n int, a []complex128, lda int, ipiv []int) Info {
	start := time.Now()
	return k.observe(RoutineZgetri, start, k.complex.Zgetri(n, a, lda, ipiv))
}

func (k *Instrumented) Zgesv(n, nrhs int, a []complex128, lda int, ipiv []int, b []complex128, ldb int) Info {
	start := time.Now()
	return k.observe(RoutineZgesv, start, k.complex.Zgesv(n, nrhs, a, lda, ipiv, b, ldb))
}

func (k *Instrumented) Zgeev(n int, a []complex128, lda int, w []complex128) Info {
	start := time.Now()
	return k.observe(RoutineZgeev, start, k.complex.Zgeev(n, a, lda, w))
}

func (k *Instrumented) Zgesvd(m, n int, a []complex128, lda int, s []float64) Info {
	start := time.Now()
	return k.observe(RoutineZgesvd, start, k.complex.Zgesvd(m, n, a, lda, s))
}
