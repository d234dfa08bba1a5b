package studygroup

// Region is where an offline study group meets. Online groups always carry
// RegionOnline.
type Region string

const (
	RegionOnline      Region = "ONLINE"
	RegionSeoul       Region = "SEOUL"
	RegionGyeonggi    Region = "GYEONGGI"
	RegionIncheon     Region = "INCHEON"
	RegionGangwon     Region = "GANGWON"
	RegionChungcheong Region = "CHUNGCHEONG"
	RegionDaejeon     Region = "DAEJEON"
	RegionSejong      Region = "SEJONG"
	RegionJeolla      Region = "JEOLLA"
	RegionGwangju     Region = "GWANGJU"
	RegionGyeongsang  Region = "GYEONGSANG"
	RegionDaegu       Region = "DAEGU"
	RegionBusan       Region = "BUSAN"
	RegionUlsan       Region = "ULSAN"
	RegionJeju        Region = "JEJU"
)

// IsValid returns true if the region is one of the defined constants.
func (r Region) IsValid() bool {
	switch r {
	case RegionOnline, RegionSeoul, RegionGyeonggi, RegionIncheon, RegionGangwon,
		RegionChungcheong, RegionDaejeon, RegionSejong, RegionJeolla, RegionGwangju,
		RegionGyeongsang, RegionDaegu, RegionBusan, RegionUlsan, RegionJeju:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (r Region) String() string {
	return string(r)
}
