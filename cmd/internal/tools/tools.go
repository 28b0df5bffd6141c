package tools

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/nathanhack/gf2codes/benchmarking"
	"github.com/nathanhack/gf2codes/linearblock"
	"github.com/nathanhack/gf2codes/linearblock/hamming"
	mat "github.com/nathanhack/sparsemat"
	"github.com/sirupsen/logrus"
)

type SimulationStats struct {
	TypeInfo string
	ECCInfo  string
	Stats    map[float64]benchmarking.Stats
}
type simulationStats struct {
	TypeInfo string
	ECCInfo  string
	Stats    map[string]benchmarking.Stats
}

func (s *SimulationStats) MarshalJSON() ([]byte, error) {
	ss := simulationStats{
		TypeInfo: s.TypeInfo,
		ECCInfo:  s.ECCInfo,
		Stats:    map[string]benchmarking.Stats{},
	}

	for f, stat := range s.Stats {
		ss.Stats[strconv.FormatFloat(f, 'g', -1, 64)] = stat
	}

	return json.Marshal(ss)
}

func (s *SimulationStats) UnmarshalJSON(bytes []byte) error {
	var ss simulationStats

	err := json.Unmarshal(bytes, &ss)
	if err != nil {
		return err
	}

	s.TypeInfo = ss.TypeInfo
	s.ECCInfo = ss.ECCInfo
	s.Stats = map[float64]benchmarking.Stats{}

	for fs, stat := range ss.Stats {
		f, err := strconv.ParseFloat(fs, 64)
		if err != nil {
			return err
		}
		s.Stats[f] = stat
	}
	return nil
}

func Md5Sum(H mat.SparseMat) string {
	return fmt.Sprintf("%x", md5.Sum([]byte(H.String())))
}

func LoadLinearBlockECC(filepath string) (*linearblock.LinearBlock, error) {
	if _, err := os.Stat(filepath); os.IsNotExist(err) {
		return nil, fmt.Errorf("the ECC_JSON_FILE must exist")
	}

	bs, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("error while reading file %v: %w", filepath, err)
	}

	var ecc linearblock.LinearBlock
	err = json.Unmarshal(bs, &ecc)
	if err != nil {
		return nil, fmt.Errorf("error while reading file %v: %w", filepath, err)
	}

	return &ecc, nil
}

func SaveLinearBlockECC(filepath string, ecc *linearblock.LinearBlock) error {
	bs, err := json.Marshal(ecc)
	if err != nil {
		return fmt.Errorf("unable to serialize the ECC: %w", err)
	}

	err = os.WriteFile(filepath, bs, 0644)
	if err != nil {
		return fmt.Errorf("unable to write file %v: %w", filepath, err)
	}
	return nil
}

// LoadResults returns nil, nil when filepath does not exist yet.
func LoadResults(filepath string) (*SimulationStats, error) {
	if _, err := os.Stat(filepath); os.IsNotExist(err) {
		return nil, nil
	}

	bs, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("error while reading file %v: %w", filepath, err)
	}

	var stat SimulationStats
	err = json.Unmarshal(bs, &stat)
	if err != nil {
		return nil, fmt.Errorf("error while unmarshalling file %v: %w", filepath, err)
	}
	return &stat, nil
}

func SaveResults(filepath string, data *SimulationStats) error {
	bs, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("error serializing results: %w", err)
	}

	err = os.WriteFile(filepath, bs, 0644)
	if err != nil {
		return fmt.Errorf("error while saving results to %v: %w", filepath, err)
	}
	return nil
}

// SignalContext returns a context that is cancelled on SIGINT or SIGTERM.
func SignalContext() context.Context {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		sig := <-sigs
		fmt.Println()
		fmt.Println(sig)
		cancel()
	}()
	return ctx
}

// CodecFor recognises the codes this module builds from their matrices. The
// returned codec encodes with ecc.G, so a Hamming code must carry the generator
// whose message bits sit at the non power of two positions.
func CodecFor(ecc *linearblock.LinearBlock) (benchmarking.Codec, error) {
	n := ecc.CodewordLength()
	if r, ok := hamming.RedundancyForCodeword(n); ok && ecc.ParitySymbols() == r && ecc.H.Equals(hamming.ParityCheckMatrix(r)) {
		if !ecc.G.Equals(hamming.GeneratorMatrix(r)) {
			return nil, fmt.Errorf("the hamming(%v,%v) ECC has a generator that does not match its parity checks", n, hamming.MessageLength(r))
		}
		return benchmarking.Hamming{ECC: ecc}, nil
	}

	if ecc.MessageLength() == 1 && n >= 2 && ecc.G.Row(0).HammingWeight() == n {
		return benchmarking.Repetition{ECC: ecc}, nil
	}

	return nil, fmt.Errorf("the ECC is neither a hamming nor a repetition code")
}

// Prepare loads the ECC and any earlier results for a simulation, checking that
// the results were produced by the same channel and ECC.
func Prepare(eccFile, resultsFile, channel string) (*SimulationStats, benchmarking.Codec, error) {
	//first get the ECC to use
	ecc, err := LoadLinearBlockECC(eccFile)
	if err != nil {
		return nil, nil, err
	}
	if !ecc.Validate() {
		return nil, nil, fmt.Errorf("the ECC in %v does not satisfy G*H.T=0", eccFile)
	}
	codec, err := CodecFor(ecc)
	if err != nil {
		return nil, nil, err
	}
	logrus.Infof("%v Message Size:%v Parity Size:%v  Codeword Size:%v  Code Rate: %v", codec.Name(), ecc.MessageLength(), ecc.ParitySymbols(), ecc.CodewordLength(), ecc.CodeRate())

	typeInfo := fmt.Sprintf("%v:%v", channel, codec.Name())
	eccInfo := Md5Sum(ecc.H)

	//next we see if the RESULT_JSON exists if so we load it and validate we're running it against the right thing
	data, err := LoadResults(resultsFile)
	if err != nil {
		return nil, nil, err
	}

	//if data is nil then we create it
	if data == nil {
		data = &SimulationStats{
			TypeInfo: typeInfo,
			ECCInfo:  eccInfo,
			Stats:    make(map[float64]benchmarking.Stats),
		}
	}

	if data.TypeInfo != typeInfo {
		return nil, nil, fmt.Errorf("results loaded do not match the type expected %v but found %v", typeInfo, data.TypeInfo)
	}
	if data.ECCInfo != eccInfo {
		return nil, nil, fmt.Errorf("results loaded do not match the ECC")
	}
	return data, codec, nil
}
