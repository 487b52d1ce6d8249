package seed

// Fixed Korean vocabulary pools. These mirror the platform's production
// catalog wording; they are product data, not tuning values, so they stay
// verbatim rather than being regenerated per run.

var categoryNames = []string{
	"한식", "중식", "일식", "양식", "치킨", "피자", "분식", "카페/디저트",
	"패스트푸드", "아시안", "족발/보쌈", "찜/탕", "회/초밥", "고기/구이",
	"도시락", "야식", "샐러드", "버거", "샌드위치", "베이커리",
}

// menuCuisines fixes the iteration order of menuTemplates so a seeded run
// always picks the same cuisine for the same store.
var menuCuisines = []string{
	"한식", "중식", "일식", "양식", "치킨", "피자", "분식", "카페/디저트",
}

var menuTemplates = map[string][]string{
	"한식":     {"김치찌개", "된장찌개", "불고기", "비빔밥", "제육볶음", "갈비탕", "삼계탕"},
	"중식":     {"짜장면", "짬뽕", "탕수육", "깐풍기", "마파두부", "울면", "양장피"},
	"일식":     {"초밥세트", "우동", "소바", "돈까스", "규동", "라멘", "카레라이스"},
	"양식":     {"스테이크", "파스타", "리조또", "그라탕", "오믈렛", "필라프"},
	"치킨":     {"후라이드", "양념치킨", "간장치킨", "반반치킨", "파닭", "순살치킨"},
	"피자":     {"페퍼로니", "콤비네이션", "불고기", "포테이토", "치즈크러스트", "슈퍼슈프림"},
	"분식":     {"떡볶이", "김밥", "튀김", "순대", "라면", "우동", "쫄면"},
	"카페/디저트": {"아메리카노", "카페라떼", "케이크", "마카롱", "크로플", "와플"},
}

var menuNameSuffixes = []string{"세트", "특선", "프리미엄", "스페셜"}

type optionTemplate struct {
	name    string
	details []string
}

var optionTemplates = []optionTemplate{
	{"맵기 선택", []string{"안맵게", "보통", "맵게", "아주맵게"}},
	{"사이즈", []string{"Small", "Medium", "Large"}},
	{"추가 토핑", []string{"치즈 추가", "야채 추가", "고기 추가", "계란 추가"}},
	{"음료", []string{"콜라", "사이다", "제로콜라", "환타"}},
}

var optionPrices = []int{0, 500, 1000, 2000, 3000}

type originTemplate struct {
	ingredient string
	origins    []string
}

var originTemplates = []originTemplate{
	{"쇠고기", []string{"한우", "미국산", "호주산"}},
	{"돼지고기", []string{"국내산", "미국산", "스페인산"}},
	{"닭고기", []string{"국내산", "브라질산"}},
	{"쌀", []string{"국내산", "캘리포니아산"}},
	{"김치", []string{"국내산 배추", "국내산 고춧가루"}},
	{"해산물", []string{"국내산", "노르웨이산", "칠레산"}},
}

// jongnoRoads are the road-name address templates; every store sits in
// Jongno-gu by construction.
var jongnoRoads = []string{
	"종로", "세종대로", "율곡로", "창경궁로", "삼일대로", "대학로", "혜화로",
	"자하문로", "북촌로", "삼청로", "윤보선길", "계동길", "가회로", "인사동길",
	"청계천로", "돈화문로", "종로1가", "종로2가", "종로3가", "종로4가", "종로5가",
}

var companyNames = []string{
	"한빛", "청솔", "미소", "늘푸른", "큰나무", "샛별", "다온", "온누리",
	"금강", "해오름", "푸른솔", "소담", "가온", "하늘", "참좋은", "정든",
	"으뜸", "행복한", "단골", "풍성한",
}

var storeNameSuffixes = []string{"식당", "레스토랑", "카페", "치킨", "피자"}

var buildingNames = []string{
	"현대빌딩", "삼성타워", "한양프라자", "스카이빌", "대명빌딩",
	"서울타워빌", "중앙상가", "명동프라자",
}

var menuDescriptions = []string{
	"정성껏 만든 인기 메뉴입니다.",
	"신선한 재료만 사용합니다.",
	"매장에서 직접 조리합니다.",
	"주문 즉시 조리를 시작합니다.",
	"사장님 추천 메뉴입니다.",
	"오늘 준비한 재료가 소진되면 판매가 종료됩니다.",
}

var orderRequests = []string{"빨리요", "문앞에 놔주세요", "벨 누르지 마세요"}

var cancelReasons = []string{
	"고객 요청으로 취소되었습니다.",
	"재료 소진으로 조리가 불가합니다.",
	"매장 사정으로 주문을 받을 수 없습니다.",
	"주문 폭주로 접수가 어렵습니다.",
	"영업 종료 시간이 임박했습니다.",
}

var reviewContents = map[int][]string{
	5: {"정말 맛있어요!", "최고입니다", "또 시켜먹을게요", "강추합니다", "맛있고 친절해요"},
	4: {"맛있어요", "괜찮습니다", "좋아요", "다음에도 주문할게요"},
	3: {"보통이에요", "나쁘지 않아요", "그럭저럭 먹을만해요"},
	2: {"별로에요", "기대 이하였어요", "다시는 안시킬듯"},
	1: {"최악이에요", "너무 실망했어요", "돈아까워요"},
}
