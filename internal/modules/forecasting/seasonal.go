package forecasting

import (
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/aristath/retailmind/internal/domain"
)

const (
	// Fourier harmonics per seasonal period.
	weeklyHarmonics = 2
	yearlyHarmonics = 2

	daysPerWeek = 7.0
	daysPerYear = 365.25

	// z value for an 85% prediction interval on a normal distribution.
	intervalZ = 1.44

	// minSeasonalObservations is the smallest history the regression will fit.
	// Below this the design matrix is too close to square to estimate a
	// residual variance worth trusting.
	minSeasonalObservations = 28
)

// seasonalModel is a least-squares regression of log1p(sales) on a linear
// trend, weekly and yearly Fourier seasonality terms, and two exogenous
// regressors (weather index, event flag). The log transform makes the
// seasonality multiplicative in sales space.
type seasonalModel struct {
	coef        []float64
	residualStd float64
	weatherMean float64
	useWeather  bool
	useEvent    bool
	lastDate    time.Time
	lastIndex   int
}

// featureCount is the width of the design matrix. Constant exogenous columns
// are dropped before fitting; they would make the matrix exactly singular.
func featureCount(useWeather, useEvent bool) int {
	n := 2 + 2*weeklyHarmonics + 2*yearlyHarmonics
	if useWeather {
		n++
	}
	if useEvent {
		n++
	}
	return n
}

// featureRow builds one design-matrix row for day index t (0-based from the
// start of training), calendar date, and the enabled regressors.
func featureRow(t int, date time.Time, weather, event float64, useWeather, useEvent bool) []float64 {
	row := make([]float64, 0, featureCount(useWeather, useEvent))
	row = append(row, 1.0, float64(t))

	for k := 1; k <= weeklyHarmonics; k++ {
		phase := 2 * math.Pi * float64(k) * float64(t) / daysPerWeek
		row = append(row, math.Sin(phase), math.Cos(phase))
	}
	for k := 1; k <= yearlyHarmonics; k++ {
		phase := 2 * math.Pi * float64(k) * float64(date.YearDay()) / daysPerYear
		row = append(row, math.Sin(phase), math.Cos(phase))
	}

	if useWeather {
		row = append(row, weather)
	}
	if useEvent {
		row = append(row, event)
	}
	return row
}

// isConstant reports whether a column carries no variation.
func isConstant(values []float64) bool {
	for _, v := range values[1:] {
		if v != values[0] {
			return false
		}
	}
	return true
}

// fitSeasonalModel trains the regression over the full history. Any numerical
// failure (rank deficiency, non-finite estimates) is returned as an error so
// the caller can fall back.
func fitSeasonalModel(history domain.ProductHistory) (*seasonalModel, error) {
	n := len(history)
	if n < minSeasonalObservations {
		return nil, fmt.Errorf("seasonal model needs at least %d observations, have %d", minSeasonalObservations, n)
	}

	weathers := make([]float64, n)
	events := make([]float64, n)
	for i, pt := range history {
		weathers[i] = pt.WeatherIndex
		if pt.EventFlag {
			events[i] = 1.0
		}
	}
	useWeather := !isConstant(weathers)
	useEvent := !isConstant(events)
	p := featureCount(useWeather, useEvent)

	xData := make([]float64, 0, n*p)
	yData := make([]float64, n)
	for i, pt := range history {
		xData = append(xData, featureRow(i, pt.Date, weathers[i], events[i], useWeather, useEvent)...)
		yData[i] = math.Log1p(pt.UnitsSold)
	}

	x := mat.NewDense(n, p, xData)
	y := mat.NewVecDense(n, yData)

	var coef mat.VecDense
	if err := coef.SolveVec(x, y); err != nil {
		return nil, fmt.Errorf("least squares solve failed: %w", err)
	}

	// Residual standard deviation in log space drives the interval width.
	var fitted mat.VecDense
	fitted.MulVec(x, &coef)
	residuals := make([]float64, n)
	for i := 0; i < n; i++ {
		residuals[i] = yData[i] - fitted.AtVec(i)
	}
	dof := n - p
	if dof < 1 {
		return nil, fmt.Errorf("not enough degrees of freedom: %d observations for %d parameters", n, p)
	}
	ssr := 0.0
	for _, r := range residuals {
		ssr += r * r
	}
	residualStd := math.Sqrt(ssr / float64(dof))

	coefs := make([]float64, p)
	for i := range coefs {
		c := coef.AtVec(i)
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return nil, fmt.Errorf("non-finite coefficient at index %d", i)
		}
		coefs[i] = c
	}

	return &seasonalModel{
		coef:        coefs,
		residualStd: residualStd,
		weatherMean: stat.Mean(weathers, nil),
		useWeather:  useWeather,
		useEvent:    useEvent,
		lastDate:    history.LastDate(),
		lastIndex:   n - 1,
	}, nil
}

// predict produces point and interval forecasts for horizonDays future dates.
// Future weather is held at the historical mean and events are assumed off.
func (m *seasonalModel) predict(horizonDays int) ([]ForecastPoint, error) {
	points := make([]ForecastPoint, 0, horizonDays)
	for d := 1; d <= horizonDays; d++ {
		date := m.lastDate.AddDate(0, 0, d)
		row := featureRow(m.lastIndex+d, date, m.weatherMean, 0, m.useWeather, m.useEvent)

		logPred := 0.0
		for i, c := range m.coef {
			logPred += c * row[i]
		}
		if math.IsNaN(logPred) || math.IsInf(logPred, 0) {
			return nil, fmt.Errorf("non-finite prediction for %s", date.Format("2006-01-02"))
		}

		point := math.Max(0, math.Expm1(logPred))
		lower := math.Max(0, math.Expm1(logPred-intervalZ*m.residualStd))
		upper := math.Max(point, math.Expm1(logPred+intervalZ*m.residualStd))

		points = append(points, ForecastPoint{
			Date:     date,
			Forecast: point,
			Lower:    lower,
			Upper:    upper,
		})
	}
	return points, nil
}
