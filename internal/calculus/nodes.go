package calculus

// Fixed 7-point Gauss-Legendre and 15-point Kronrod node tables on [-1, 1].
// Both are symmetric about zero and their weights sum to 2; the Kronrod
// table interleaves the seven Gauss nodes with eight new ones, which is
// what makes |kronrod - gauss| a usable local error estimate at no extra
// function evaluations for the shared nodes.

var gaussNodes = [7]float64{
	-0.9491079123427585,
	-0.7415311855993944,
	-0.4058451513773972,
	0.0,
	0.4058451513773972,
	0.7415311855993944,
	0.9491079123427585,
}

var gaussWeights = [7]float64{
	0.1294849661688697,
	0.2797053914892767,
	0.3818300505051189,
	0.4179591836734694,
	0.3818300505051189,
	0.2797053914892767,
	0.1294849661688697,
}

var kronrodNodes = [15]float64{
	-0.9914553711208126,
	-0.9491079123427585,
	-0.8648644233597691,
	-0.7415311855993944,
	-0.5860872354676911,
	-0.4058451513773972,
	-0.2077849550078985,
	0.0,
	0.2077849550078985,
	0.4058451513773972,
	0.5860872354676911,
	0.7415311855993944,
	0.8648644233597691,
	0.9491079123427585,
	0.9914553711208126,
}

var kronrodWeights = [15]float64{
	0.02293532201052922,
	0.06309209262997855,
	0.1047900103222502,
	0.1406532597155259,
	0.1690047266392679,
	0.1903505780647854,
	0.2044329400752989,
	0.2094821410847278,
	0.2044329400752989,
	0.1903505780647854,
	0.1690047266392679,
	0.1406532597155259,
	0.1047900103222502,
	0.06309209262997855,
	0.02293532201052922,
}
