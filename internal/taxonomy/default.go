package taxonomy

// defaultEntries is used when neither the live page nor the cache yields anything.
var defaultEntries = []Entry{
	{
		Code:        "math.AC",
		Name:        "Commutative Algebra",
		Description: "Commutative rings, modules, ideals, homological algebra, computational aspects, invariant theory, connections to algebraic geometry and combinatorics",
		Group:       GroupMath,
	},
	{
		Code:        "math.AG",
		Name:        "Algebraic Geometry",
		Description: "Algebraic varieties, stacks, sheaves, schemes, moduli spaces, complex geometry, quantum cohomology",
		Group:       GroupMath,
	},
	{
		Code:        "math.AP",
		Name:        "Analysis of PDEs",
		Description: "Existence and uniqueness, boundary conditions, linear and non-linear operators, stability, soliton theory, integrable PDE's, conservation laws, qualitative dynamics",
		Group:       GroupMath,
	},
	{
		Code:        "math.AT",
		Name:        "Algebraic Topology",
		Description: "Homotopy theory, homological algebra, algebraic treatments of manifolds",
		Group:       GroupMath,
	},
	{
		Code:        "math.CA",
		Name:        "Classical Analysis and ODEs",
		Description: "Special functions, orthogonal polynomials, harmonic analysis, ODE's, differential relations, calculus of variations, approximations, expansions, asymptotics",
		Group:       GroupMath,
	},
	{
		Code:        "math.CO",
		Name:        "Combinatorics",
		Description: "Discrete mathematics, graph theory, enumeration, combinatorial optimization, Ramsey theory, combinatorial game theory",
		Group:       GroupMath,
	},
	{
		Code:        "math.CT",
		Name:        "Category Theory",
		Description: "Enriched categories, topoi, abelian categories, monoidal categories, homological algebra",
		Group:       GroupMath,
	},
	{
		Code:        "math.CV",
		Name:        "Complex Variables",
		Description: "Holomorphic functions, automorphic group actions and forms, pseudoconvexity, complex geometry, analytic spaces, analytic sheaves",
		Group:       GroupMath,
	},
	{
		Code:        "math.DG",
		Name:        "Differential Geometry",
		Description: "Complex, contact, Riemannian, pseudo-Riemannian and Finsler geometry, relativity, gauge theory, global analysis",
		Group:       GroupMath,
	},
	{
		Code:        "math.DS",
		Name:        "Dynamical Systems",
		Description: "Dynamics of differential equations and flows, mechanics, classical few-body problems, iterations, complex dynamics, delayed differential equations",
		Group:       GroupMath,
	},
	{
		Code:        "math.FA",
		Name:        "Functional Analysis",
		Description: "Banach spaces, function spaces, real functions, integral transforms, theory of distributions, measure theory",
		Group:       GroupMath,
	},
	{
		Code:        "math.GM",
		Name:        "General Mathematics",
		Description: "Mathematical material of general interest, topics not covered elsewhere",
		Group:       GroupMath,
	},
	{
		Code:        "math.GN",
		Name:        "General Topology",
		Description: "Continuum theory, point-set topology, spaces with algebraic structure, foundations, dimension theory, local and global properties",
		Group:       GroupMath,
	},
	{
		Code:        "math.GR",
		Name:        "Group Theory",
		Description: "Finite groups, topological groups, representation theory, cohomology, classification and structure",
		Group:       GroupMath,
	},
	{
		Code:        "math.GT",
		Name:        "Geometric Topology",
		Description: "Manifolds, orbifolds, polyhedra, cell complexes, foliations, geometric structures",
		Group:       GroupMath,
	},
	{
		Code:        "math.HO",
		Name:        "History and Overview",
		Description: "Biographies, philosophy of mathematics, mathematics education, recreational mathematics, communication of mathematics, ethics in mathematics",
		Group:       GroupMath,
	},
	{
		Code:        "math.IT",
		Name:        "Information Theory",
		Description: "math.IT is an alias for cs.IT. Covers theoretical and experimental aspects of information theory and coding.",
		Group:       GroupMath,
	},
	{
		Code:        "math.KT",
		Name:        "K-Theory and Homology",
		Description: "Algebraic and topological K-theory, relations with topology, commutative algebra, and operator algebras",
		Group:       GroupMath,
	},
	{
		Code:        "math.LO",
		Name:        "Logic",
		Description: "Logic, set theory, point-set topology, formal mathematics",
		Group:       GroupMath,
	},
	{
		Code:        "math.MG",
		Name:        "Metric Geometry",
		Description: "Euclidean, hyperbolic, discrete, convex, coarse geometry, comparisons in Riemannian geometry, symmetric spaces",
		Group:       GroupMath,
	},
	{
		Code:        "math.MP",
		Name:        "Mathematical Physics",
		Description: "math.MP is an alias for math-ph. Articles in this category focus on areas of research that illustrate the application of mathematics to problems in physics, develop mathematical methods for such applications, or provide mathematically rigorous formulations of existing physical theories. Submissions to math-ph should be of interest to both physically oriented mathematicians and mathematically oriented physicists; submissions which are primarily of interest to theoretical physicists or to mathematicians should probably be directed to the respective physics/math categories",
		Group:       GroupMath,
	},
	{
		Code:        "math.NA",
		Name:        "Numerical Analysis",
		Description: "Numerical algorithms for problems in analysis and algebra, scientific computation",
		Group:       GroupMath,
	},
	{
		Code:        "math.NT",
		Name:        "Number Theory",
		Description: "Prime numbers, diophantine equations, analytic number theory, algebraic number theory, arithmetic geometry, Galois theory",
		Group:       GroupMath,
	},
	{
		Code:        "math.OA",
		Name:        "Operator Algebras",
		Description: "Algebras of operators on Hilbert space, C^*-algebras, von Neumann algebras, non-commutative geometry",
		Group:       GroupMath,
	},
	{
		Code:        "math.OC",
		Name:        "Optimization and Control",
		Description: "Operations research, linear programming, control theory, systems theory, optimal control, game theory",
		Group:       GroupMath,
	},
	{
		Code:        "math.PR",
		Name:        "Probability",
		Description: "Theory and applications of probability and stochastic processes: e.g. central limit theorems, large deviations, stochastic differential equations, models from statistical mechanics, queuing theory",
		Group:       GroupMath,
	},
	{
		Code:        "math.QA",
		Name:        "Quantum Algebra",
		Description: "Quantum groups, skein theories, operadic and diagrammatic algebra, quantum field theory",
		Group:       GroupMath,
	},
	{
		Code:        "math.RA",
		Name:        "Rings and Algebras",
		Description: "Non-commutative rings and algebras, non-associative algebras, universal algebra and lattice theory, linear algebra, semigroups",
		Group:       GroupMath,
	},
	{
		Code:        "math.RT",
		Name:        "Representation Theory",
		Description: "Linear representations of algebras and groups, Lie theory, associative algebras, multilinear algebra",
		Group:       GroupMath,
	},
	{
		Code:        "math.SG",
		Name:        "Symplectic Geometry",
		Description: "Hamiltonian systems, symplectic flows, classical integrable systems",
		Group:       GroupMath,
	},
	{
		Code:        "math.SP",
		Name:        "Spectral Theory",
		Description: "Schrodinger operators, operators on manifolds, general differential operators, numerical studies, integral operators, discrete models, resonances, non-self-adjoint operators, random operators/matrices",
		Group:       GroupMath,
	},
	{
		Code:        "math.ST",
		Name:        "Statistics Theory",
		Description: "Applied, computational and theoretical statistics: e.g. statistical inference, regression, time series, multivariate analysis, data analysis, Markov chain Monte Carlo, design of experiments, case studies",
		Group:       GroupMath,
	},
}

// Default returns the built-in taxonomy of mathematics subject areas.
// Each call returns a fresh copy.
func Default() *Taxonomy {
	return New(defaultEntries...)
}
